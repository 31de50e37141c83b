package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded solves",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a solve",
	Long: `Display a recorded solve: facelet state, solution, move count
and timing.

Use --last to show the most recent solve.`,
	RunE: runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves recorded yet")
		fmt.Println("Solve something with: cubelab solve --random")
		return nil
	}

	fmt.Printf("Recent solves (showing %d):\n", len(solves))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-6s  %-10s  %s\n", "ID", "When", "Moves", "Duration", "Solver")
	fmt.Println("------------------------------------  --------------------  ------  ----------  ------")

	for _, s := range solves {
		duration := fmt.Sprintf("%.2fs", float64(s.DurationMs)/1000.0)
		fmt.Printf("%-36s  %-20s  %-6d  %-10s  %s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.MoveCount,
			duration,
			s.Solver,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	solve, err := lookupSolve(storage.NewSolveRepository(db), args, historyLast)
	if err != nil {
		return err
	}

	fmt.Printf("ID:       %s\n", solve.SolveID)
	fmt.Printf("When:     %s\n", solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("State:    %s\n", solve.Facelets)
	fmt.Printf("Solution: %s\n", solve.Solution)
	fmt.Printf("Moves:    %d\n", solve.MoveCount)
	fmt.Printf("Duration: %s\n", (time.Duration(solve.DurationMs) * time.Millisecond).String())
	fmt.Printf("Solver:   %s\n", solve.Solver)
	fmt.Println()
	fmt.Printf("Replay with: cubelab replay --id %s\n", solve.SolveID)
	return nil
}

// lookupSolve resolves a solve from a positional ID or the --last flag.
func lookupSolve(repo *storage.SolveRepository, args []string, last bool) (*storage.Solve, error) {
	var solve *storage.Solve
	var err error

	switch {
	case last:
		solve, err = repo.GetLast()
	case len(args) > 0:
		solve, err = repo.Get(args[0])
	default:
		return nil, fmt.Errorf("please provide a solve ID or use --last")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return nil, fmt.Errorf("solve not found")
	}
	return solve, nil
}
