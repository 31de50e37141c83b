package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/solver"
	"github.com/seamusw/cubelab/internal/storage"
)

var (
	replayID       string
	replayLast     bool
	replayInterval int
)

var replayCmd = &cobra.Command{
	Use:   "replay [facelets] [moves...]",
	Short: "Step through a solution in the terminal",
	Long: `Step through a move sequence applied to a cube state, one move at
a time, with a colored net of the cube at every step.

The state and moves come either from a recorded solve (--id or --last)
or from the command line.

Keys:
  right/n     step forward          left/b  step backward
  space       play / pause          r/0     jump to start
  $           jump to end           s       solve the shown state
  q           quit

Examples:
  cubelab replay --last
  cubelab replay --id <solve-id>
  cubelab replay UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB "R'"`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayID, "id", "", "Replay a recorded solve by ID")
	replayCmd.Flags().BoolVar(&replayLast, "last", false, "Replay the most recent recorded solve")
	replayCmd.Flags().IntVar(&replayInterval, "interval", 0, "Autoplay interval in milliseconds (default from config)")
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var facelets, solution string
	switch {
	case replayID != "" || replayLast:
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		var idArgs []string
		if replayID != "" {
			idArgs = []string{replayID}
		}
		solve, err := lookupSolve(storage.NewSolveRepository(db), idArgs, replayLast)
		db.Close()
		if err != nil {
			return err
		}
		facelets = solve.Facelets
		solution = solve.Solution

	case len(args) >= 1:
		facelets = args[0]
		solution = strings.Join(args[1:], " ")

	default:
		return fmt.Errorf("provide a facelet string, or use --id / --last")
	}

	cube, err := cubelab.DecodeFacelets(facelets)
	if err != nil {
		return err
	}
	if err := cube.Validate(); err != nil {
		return err
	}
	moves, err := cubelab.ParseMoves(solution)
	if err != nil {
		return err
	}

	interval := cfg.PlaybackInterval()
	if replayInterval > 0 {
		interval = time.Duration(replayInterval) * time.Millisecond
	}

	model := newReplayModel(cube, moves, interval, newSolver(cfg), cfg.SolverTimeout())
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// Replay model
type replayModel struct {
	player   *cubelab.Player
	interval time.Duration

	solver       solver.Solver
	solveTimeout time.Duration

	playing  bool
	solving  bool
	note     string
	quitting bool
}

func newReplayModel(cube *cubelab.Cube, moves []cubelab.Move, interval time.Duration, slv solver.Solver, timeout time.Duration) *replayModel {
	p := cubelab.NewPlayer(interval)
	p.Load(moves, cube)
	return &replayModel{
		player:       p,
		interval:     interval,
		solver:       slv,
		solveTimeout: timeout,
	}
}

type playTickMsg struct{}

// solveResultMsg carries the facelet string the solve was issued for, so
// a result arriving after the shown state changed can be thrown away.
type solveResultMsg struct {
	facelets string
	moves    []cubelab.Move
	err      error
}

func (m *replayModel) Init() tea.Cmd {
	return nil
}

func (m *replayModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return playTickMsg{}
	})
}

func (m *replayModel) currentFacelets() string {
	facelets, err := cubelab.EncodeFacelets(m.player.State())
	if err != nil {
		return ""
	}
	return facelets
}

func (m *replayModel) requestSolve() tea.Cmd {
	facelets := m.currentFacelets()
	slv := m.solver
	timeout := m.solveTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		moves, err := slv.Solve(ctx, facelets)
		return solveResultMsg{facelets: facelets, moves: moves, err: err}
	}
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "right", "n", "l":
			m.playing = false
			m.player.StepForward()
			m.note = ""

		case "left", "b", "h":
			m.playing = false
			m.player.StepBackward()
			m.note = ""

		case " ":
			if m.player.Done() {
				return m, nil
			}
			m.playing = !m.playing
			m.note = ""
			if m.playing {
				return m, m.tick()
			}

		case "r", "0", "home":
			m.playing = false
			m.player.JumpTo(0)
			m.note = ""

		case "$", "end":
			m.playing = false
			m.player.JumpTo(m.player.Len())
			m.note = ""

		case "s":
			if m.solving {
				return m, nil
			}
			if m.player.State().IsSolved() {
				m.note = "Already solved."
				return m, nil
			}
			m.playing = false
			m.solving = true
			m.note = "Solving..."
			return m, m.requestSolve()
		}

	case playTickMsg:
		if !m.playing {
			return m, nil
		}
		if !m.player.StepForward() {
			m.playing = false
			return m, nil
		}
		if m.player.Done() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()

	case solveResultMsg:
		m.solving = false
		if msg.facelets != m.currentFacelets() {
			m.note = "Discarded a solve result for an earlier state."
			return m, nil
		}
		if msg.err != nil {
			m.note = errorStyle.Render(fmt.Sprintf("Solve failed: %v", msg.err))
			return m, nil
		}
		if len(msg.moves) == 0 {
			m.note = "Already solved."
			return m, nil
		}
		// Restart playback from here with the fresh solution.
		m.player.Load(msg.moves, m.player.State())
		m.note = fmt.Sprintf("Loaded a %d-move solution.", len(msg.moves))
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Cubelab Replay"))
	b.WriteString("\n\n")

	b.WriteString(renderNet(m.player.State()))
	b.WriteString("\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")

	moves := m.player.Moves()
	if len(moves) > 0 {
		cursor := m.player.Cursor()
		var parts []string
		for i, mv := range moves {
			n := mv.Notation()
			if i < cursor {
				n = moveStyle.Render(n)
			}
			parts = append(parts, n)
		}
		b.WriteString(strings.Join(parts, " "))
		b.WriteString("\n")
	}

	if m.playing {
		b.WriteString(statusStyle.Render("[PLAYING]"))
		b.WriteString("\n")
	}
	if m.note != "" {
		b.WriteString(m.note)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("arrows=step  SPACE=play/pause  r=restart  $=end  s=solve  q=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *replayModel) statusLine() string {
	cursor := m.player.Cursor()
	total := m.player.Len()

	switch {
	case cursor == 0:
		return "Ready to start"
	case cursor == total && m.player.State().IsSolved():
		return solvedStyle.Render("Solved!")
	default:
		return fmt.Sprintf("Step %d/%d: %s", cursor, total, m.player.Moves()[cursor-1].Notation())
	}
}
