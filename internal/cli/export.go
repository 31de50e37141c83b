package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/storage"
)

var (
	exportOutput string
	exportLimit  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export solve history",
	Long: `Export recorded solves as JSON lines, one solve per line.

When the output filename ends in .zst the stream is zstd-compressed.

Examples:
  cubelab export -o solves.jsonl
  cubelab export -o solves.jsonl.zst
  cubelab export --limit 100`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "Maximum number of solves (0 means all)")
}

type exportRecord struct {
	SolveID    string `json:"solve_id"`
	CreatedAt  string `json:"created_at"`
	Facelets   string `json:"facelets"`
	Solution   string `json:"solution"`
	MoveCount  int    `json:"move_count"`
	DurationMs int64  `json:"duration_ms"`
	Solver     string `json:"solver"`
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	limit := exportLimit
	if limit <= 0 {
		limit, err = repo.Count()
		if err != nil {
			return fmt.Errorf("failed to count solves: %w", err)
		}
		if limit == 0 {
			fmt.Fprintln(os.Stderr, "No solves to export")
			return nil
		}
	}

	solves, err := repo.List(limit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	var out io.Writer = os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f

		if strings.HasSuffix(exportOutput, ".zst") {
			zw, err := zstd.NewWriter(f)
			if err != nil {
				return fmt.Errorf("failed to create zstd writer: %w", err)
			}
			defer zw.Close()
			out = zw
		}
	}

	enc := json.NewEncoder(out)
	for _, s := range solves {
		rec := exportRecord{
			SolveID:    s.SolveID,
			CreatedAt:  s.CreatedAt.UTC().Format(time.RFC3339Nano),
			Facelets:   s.Facelets,
			Solution:   s.Solution,
			MoveCount:  s.MoveCount,
			DurationMs: s.DurationMs,
			Solver:     s.Solver,
		}
		if err := enc.Encode(rec); err != nil {
			return fmt.Errorf("failed to encode solve %s: %w", s.SolveID, err)
		}
	}

	if exportOutput != "" {
		fmt.Fprintf(os.Stderr, "Exported %d solves to %s\n", len(solves), exportOutput)
	}
	return nil
}
