package cli

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/storage"
)

var (
	solveRandom bool
	solveLength int
	noRecord    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [facelets]",
	Short: "Solve a cube state",
	Long: `Solve a cube state via the external solver service.

Pass a 54-character facelet string in URFDLB order, or use --random to
scramble a fresh cube and solve that.

Examples:
  cubelab solve UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB
  cubelab solve --random
  cubelab solve --random --length 25`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Scramble a solved cube and solve the result")
	solveCmd.Flags().IntVar(&solveLength, "length", 0, "Scramble length with --random (default from config)")
	solveCmd.Flags().BoolVar(&noRecord, "no-record", false, "Do not record the solve in history")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var facelets string
	switch {
	case solveRandom:
		length := cfg.ScrambleLength
		if solveLength > 0 {
			length = solveLength
		}
		length = cfg.ClampScrambleLength(length)

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		scramble := cubelab.Scramble(length, rng)

		c := cubelab.Solved()
		c.Apply(scramble...)
		facelets, err = cubelab.EncodeFacelets(c)
		if err != nil {
			return err
		}
		fmt.Printf("Scramble: %s\n", cubelab.FormatMoves(scramble))
		fmt.Printf("State:    %s\n\n", facelets)

	case len(args) == 1:
		facelets = args[0]

	default:
		return fmt.Errorf("provide a facelet string or use --random")
	}

	cube, err := cubelab.DecodeFacelets(facelets)
	if err != nil {
		return err
	}
	if err := cube.Validate(); err != nil {
		return err
	}

	slv := newSolver(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.SolverTimeout())
	defer cancel()

	start := time.Now()
	moves, err := slv.Solve(ctx, facelets)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}
	elapsed := time.Since(start)

	// The solution must restore the exact state it was issued for.
	check := cube.Snapshot()
	check.Apply(moves...)
	if !check.IsSolved() {
		return fmt.Errorf("solver returned a sequence that does not solve this state")
	}

	if len(moves) == 0 {
		fmt.Println("Cube is already solved.")
		return nil
	}

	fmt.Printf("Solution (%d moves, %.2fs):\n", len(moves), elapsed.Seconds())
	fmt.Println(cubelab.FormatMoves(moves))

	if !noRecord {
		db, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(facelets, cubelab.FormatMoves(moves), len(moves), elapsed, slv.Name())
		if err != nil {
			return fmt.Errorf("failed to record solve: %w", err)
		}
		fmt.Println()
		fmt.Printf("Recorded: %s\n", id)
		fmt.Printf("Replay with: cubelab replay --id %s\n", id)
	}

	return nil
}
