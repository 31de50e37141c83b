package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one recorded solve: the configuration that was solved, the
// solution the external solver produced, and how long the call took.
type Solve struct {
	SolveID    string
	CreatedAt  time.Time
	Facelets   string
	Solution   string
	MoveCount  int
	DurationMs int64
	Solver     string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solve and returns its ID.
func (r *SolveRepository) Create(facelets, solution string, moveCount int, duration time.Duration, solver string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, created_at, facelets, solution, move_count, duration_ms, solver)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, createdAt.Format(time.RFC3339Nano), facelets, solution, moveCount, duration.Milliseconds(), solver)
	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Get retrieves a solve by ID. A missing ID returns nil, nil.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, facelets, solution, move_count, duration_ms, solver
		FROM solves
		WHERE solve_id = ?
	`, solveID)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve, or nil when the history is empty.
func (r *SolveRepository) GetLast() (*Solve, error) {
	row := r.db.QueryRow(`
		SELECT solve_id, created_at, facelets, solution, move_count, duration_ms, solver
		FROM solves
		ORDER BY created_at DESC, solve_id DESC
		LIMIT 1
	`)

	s, err := scanSolve(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List returns up to limit solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(`
		SELECT solve_id, created_at, facelets, solution, move_count, duration_ms, solver
		FROM solves
		ORDER BY created_at DESC, solve_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	return solves, rows.Err()
}

// Count returns the number of recorded solves.
func (r *SolveRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count solves: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSolve(row rowScanner) (*Solve, error) {
	var s Solve
	var createdAt string
	if err := row.Scan(&s.SolveID, &createdAt, &s.Facelets, &s.Solution, &s.MoveCount, &s.DurationMs, &s.Solver); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	s.CreatedAt = t
	return &s, nil
}
