package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab"
)

var (
	scrambleLength int
	scrambleShow   bool
	scrambleSeed   int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and the facelet state it
produces when applied to a solved cube.

The length is clamped to [10, 30].`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Render the scrambled cube net")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 means time-based)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	length := cfg.ScrambleLength
	if scrambleLength > 0 {
		length = scrambleLength
	}
	length = cfg.ClampScrambleLength(length)

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := cubelab.Scramble(length, rng)

	c := cubelab.Solved()
	c.Apply(moves...)
	facelets, err := cubelab.EncodeFacelets(c)
	if err != nil {
		return err
	}

	fmt.Printf("Scramble: %s\n", cubelab.FormatMoves(moves))
	fmt.Printf("State:    %s\n", facelets)
	if scrambleShow {
		fmt.Println()
		fmt.Print(renderNet(c))
	}
	return nil
}
