package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab"
)

var paintSeed int64

var paintCmd = &cobra.Command{
	Use:   "paint",
	Short: "Paint a random balanced cube state",
	Long: `Paint all 54 stickers with a random permutation of the balanced
color multiset (nine stickers of each color).

Unlike 'scramble', the result is almost always mechanically impossible
to reach by turning faces. It passes validation but the solver will
usually reject it. Useful for exercising validation and error paths.`,
	RunE: runPaint,
}

func init() {
	rootCmd.AddCommand(paintCmd)
	paintCmd.Flags().Int64Var(&paintSeed, "seed", 0, "Random seed (0 means time-based)")
}

func runPaint(cmd *cobra.Command, args []string) error {
	seed := paintSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	c := cubelab.RandomBalanced(rng)
	facelets, err := cubelab.EncodeFacelets(c)
	if err != nil {
		return err
	}

	fmt.Printf("State: %s\n\n", facelets)
	fmt.Print(renderNet(c))
	return nil
}
