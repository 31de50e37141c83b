package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubelab"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles maps each color to a colored block style.
var stickerStyles = map[cubelab.Color]lipgloss.Style{
	cubelab.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("232")),
	cubelab.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("232")),
	cubelab.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cubelab.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("232")),
	cubelab.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("232")),
	cubelab.Red:    lipgloss.NewStyle().Background(lipgloss.Color("160")).Foreground(lipgloss.Color("255")),
}

func renderSticker(c cubelab.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return " . "
	}
	return style.Render(" " + string(c.Letter()) + " ")
}

// renderNet draws the cube as an unfolded net with colored stickers:
// U on top, the L F R B band in the middle, D at the bottom.
func renderNet(c *cubelab.Cube) string {
	var b strings.Builder

	pad := strings.Repeat(" ", 9)
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		for col := 0; col < 3; col++ {
			b.WriteString(renderSticker(c.Stickers[cubelab.FaceU][row][col]))
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []cubelab.Face{cubelab.FaceL, cubelab.FaceF, cubelab.FaceR, cubelab.FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(renderSticker(c.Stickers[f][row][col]))
			}
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		for col := 0; col < 3; col++ {
			b.WriteString(renderSticker(c.Stickers[cubelab.FaceD][row][col]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
