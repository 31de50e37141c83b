package cubelab

import "strings"

// Color represents a sticker color. A sticker being edited may hold any
// color; Unset marks a sticker that has not been painted yet.
type Color byte

const (
	Unset  Color = 0
	White  Color = 1 // Up face when solved
	Yellow Color = 2 // Down face when solved
	Blue   Color = 3 // Front face when solved
	Green  Color = 4 // Back face when solved
	Orange Color = 5 // Left face when solved
	Red    Color = 6 // Right face when solved
)

// Colors lists the six sticker colors in canonical face order (U, D, F, B, L, R).
var Colors = [6]Color{White, Yellow, Blue, Green, Orange, Red}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Orange:
		return "orange"
	case Red:
		return "red"
	default:
		return "unset"
	}
}

// Letter returns the single-letter facelet rendering of the color:
// the letter of the face the color belongs to on a solved cube.
func (c Color) Letter() byte {
	switch c {
	case White:
		return 'U'
	case Yellow:
		return 'D'
	case Blue:
		return 'F'
	case Green:
		return 'B'
	case Orange:
		return 'L'
	case Red:
		return 'R'
	default:
		return '.'
	}
}

// Face identifies one of the six cube faces.
type Face int

const (
	FaceU Face = 0 // Up (white)
	FaceD Face = 1 // Down (yellow)
	FaceF Face = 2 // Front (blue)
	FaceB Face = 3 // Back (green)
	FaceL Face = 4 // Left (orange)
	FaceR Face = 5 // Right (red)
)

// Faces lists all six faces.
var Faces = [6]Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR}

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	case FaceR:
		return "R"
	default:
		return "?"
	}
}

// SolvedColor returns the color of this face on a solved cube.
func (f Face) SolvedColor() Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Blue
	case FaceB:
		return Green
	case FaceL:
		return Orange
	case FaceR:
		return Red
	default:
		return Unset
	}
}

// Grid is one face's 3x3 sticker matrix, indexed [row][col].
// For the side faces row 0 is the edge nearest the Up face. The Up face is
// read with Back at the top, the Down face with Front at the top (the
// standard facelet layout).
type Grid [3][3]Color

// Cube holds the 54 stickers of a 3x3 cube, one Grid per face.
//
// A Cube is plain editable data: partial states with Unset stickers are
// valid intermediate values, and no invariant is enforced until Validate.
type Cube struct {
	Stickers [6]Grid
}

// NewCube returns a cube with all 54 stickers Unset, ready for painting.
func NewCube() *Cube {
	return &Cube{}
}

// Solved returns a cube with every face painted its canonical color:
// white up, yellow down, blue front, green back, orange left, red right.
func Solved() *Cube {
	c := &Cube{}
	for _, f := range Faces {
		color := f.SolvedColor()
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				c.Stickers[f][r][col] = color
			}
		}
	}
	return c
}

func inRange(f Face, row, col int) bool {
	return f >= 0 && f < 6 && row >= 0 && row < 3 && col >= 0 && col < 3
}

// Get returns the color of one sticker.
func (c *Cube) Get(f Face, row, col int) (Color, error) {
	if !inRange(f, row, col) {
		return Unset, ErrOutOfRange
	}
	return c.Stickers[f][row][col], nil
}

// Set paints one sticker. It never validates the resulting configuration.
func (c *Cube) Set(f Face, row, col int, color Color) error {
	if !inRange(f, row, col) {
		return ErrOutOfRange
	}
	c.Stickers[f][row][col] = color
	return nil
}

// Reset clears all 54 stickers back to Unset.
func (c *Cube) Reset() {
	c.Stickers = [6]Grid{}
}

// TotalSet counts the stickers that have been painted.
func (c *Cube) TotalSet() int {
	n := 0
	for _, g := range c.Stickers {
		for _, row := range g {
			for _, color := range row {
				if color != Unset {
					n++
				}
			}
		}
	}
	return n
}

// ColorHistogram counts painted stickers per color.
func (c *Cube) ColorHistogram() map[Color]int {
	hist := make(map[Color]int, 6)
	for _, g := range c.Stickers {
		for _, row := range g {
			for _, color := range row {
				if color != Unset {
					hist[color]++
				}
			}
		}
	}
	return hist
}

// Validate checks that the cube is ready to hand to a solver: all 54
// stickers painted, exactly 9 of each color, exactly 6 distinct colors.
// The first failing check is reported. Validate does not prove the
// configuration is mechanically reachable; that is the solver's job.
func (c *Cube) Validate() error {
	if n := c.TotalSet(); n != 54 {
		return &IncompleteError{Count: n}
	}
	hist := c.ColorHistogram()
	for _, color := range Colors {
		if n, ok := hist[color]; ok && n != 9 {
			return &ColorCountError{Color: color, Count: n}
		}
	}
	if len(hist) != 6 {
		return &ColorVarietyError{Count: len(hist)}
	}
	return nil
}

// Snapshot returns a deep copy. Playback always runs on a snapshot so the
// editable cube is never mutated behind the editor's back.
func (c *Cube) Snapshot() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether two cubes hold identical stickers.
func (c *Cube) Equal(other *Cube) bool {
	return other != nil && c.Stickers == other.Stickers
}

// IsSolved reports whether every face is uniformly its canonical color.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		want := f.SolvedColor()
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				if c.Stickers[f][r][col] != want {
					return false
				}
			}
		}
	}
	return true
}

// String renders the cube as an unfolded net:
//
//	    U
//	L F R B
//	    D
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(f Face, row int) {
		for col := 0; col < 3; col++ {
			b.WriteByte(c.Stickers[f][row][col].Letter())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceU, row)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []Face{FaceL, FaceF, FaceR, FaceB} {
			writeRow(f, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(FaceD, row)
		b.WriteByte('\n')
	}

	return b.String()
}
