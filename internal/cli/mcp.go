package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/mcpserver"
	"github.com/seamusw/cubelab/internal/storage"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP tool server on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout, exposing the
cube operations as tools for an LLM client.

Tools: solve_cube, validate_cube, scramble, apply_moves, show_cube.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// History recording is best effort; the tools work without it.
	var repo *storage.SolveRepository
	if db, err := openDB(cfg); err == nil {
		defer db.Close()
		repo = storage.NewSolveRepository(db)
	}

	srv := mcpserver.New(cfg, newSolver(cfg), repo, version)
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}
