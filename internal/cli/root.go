// Package cli implements the command-line interface for cubelab.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/config"
	"github.com/seamusw/cubelab/internal/solver"
	"github.com/seamusw/cubelab/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	dbPath  string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubelab",
	Short: "Rubik's cube toolbox",
	Long: `Cubelab - A CLI toolbox for the 3x3x3 Rubik's cube.

Validate cube states, generate scrambles, solve via an external solver
service, replay solutions step by step in the terminal, and keep a
history of past solves.

Cube states are 54-character facelet strings in URFDLB face order.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubelab/cubelab.db)")
}

// loadConfig reads the config file from the --config flag, falling back
// to defaults when none is given.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

func openDB(cfg config.Config) (*storage.DB, error) {
	var db *storage.DB
	var err error

	if cfg.DBPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(cfg.DBPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func newSolver(cfg config.Config) *solver.HTTPSolver {
	return solver.NewHTTPSolver(cfg.SolverURL, cfg.SolverTimeout())
}
