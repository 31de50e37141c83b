package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show solver and database status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	slv := newSolver(cfg)
	fmt.Printf("Solver:   %s\n", slv.Name())

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := slv.Ping(ctx); err != nil {
		fmt.Printf("          unreachable: %v\n", err)
	} else {
		fmt.Println("          reachable")
	}

	db, err := openDB(cfg)
	if err != nil {
		fmt.Printf("Database: unavailable: %v\n", err)
		return nil
	}
	defer db.Close()

	fmt.Printf("Database: %s\n", db.Path())
	if v, err := db.CurrentVersion(); err == nil {
		fmt.Printf("          schema version %d\n", v)
	}
	if n, err := storage.NewSolveRepository(db).Count(); err == nil {
		fmt.Printf("          %d solves recorded\n", n)
	}
	return nil
}
