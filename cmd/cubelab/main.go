// Cubelab - CLI toolbox for validating, scrambling, solving and replaying
// 3x3x3 Rubik's cube states.
package main

import (
	"github.com/seamusw/cubelab/internal/cli"
)

func main() {
	cli.Execute()
}
