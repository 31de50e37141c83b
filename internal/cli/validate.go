package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab"
)

var validateShow bool

var validateCmd = &cobra.Command{
	Use:   "validate <facelets>",
	Short: "Check whether a cube state is well formed",
	Long: `Check whether a facelet string describes a well-formed cube:
54 stickers, nine of each color, all six colors present.

Note that a well-formed state is not necessarily solvable; the solver
service has the final word on that.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validateShow, "show", false, "Render the cube net")
}

func runValidate(cmd *cobra.Command, args []string) error {
	cube, err := cubelab.DecodeFacelets(args[0])
	if err == nil {
		err = cube.Validate()
	}
	if err != nil {
		return fmt.Errorf("invalid: %w", err)
	}

	if cube.IsSolved() {
		fmt.Println("Valid. The cube is already solved.")
	} else {
		fmt.Println("Valid cube state.")
	}
	if validateShow {
		fmt.Println()
		fmt.Print(renderNet(cube))
	}
	return nil
}
