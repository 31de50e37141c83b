package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/server"
	"github.com/seamusw/cubelab/internal/storage"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server.

Endpoints:
  POST /api/solve      Solve a cube state
  POST /api/validate   Check a cube state
  GET  /api/scramble   Generate a scramble
  GET  /api/status     Server and solver status
  GET  /ws/playback    Websocket solution playback stream`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveListen != "" {
		cfg.Listen = serveListen
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("solve history disabled: %w", err)
	}
	defer db.Close()
	repo := storage.NewSolveRepository(db)

	srv := server.New(cfg, newSolver(cfg), repo, version)

	log.Printf("cubelab %s listening on %s (solver %s)", version, cfg.Listen, cfg.SolverURL)
	return srv.ListenAndServe()
}
