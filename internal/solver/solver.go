// Package solver is the boundary to external cube-solving services.
//
// Solving is not implemented here: a Solver takes the 54-character facelet
// string and returns the move sequence some external algorithm produced.
// Callers that solve asynchronously must remember the facelet string a
// request was issued for and discard the result if the cube has been
// edited since; a solution is only meaningful for the exact state it was
// computed from.
package solver

import (
	"context"
	"errors"

	"github.com/seamusw/cubelab"
)

// Sentinel errors reported by solver implementations.
var (
	// ErrUnavailable means the solving service could not be reached.
	ErrUnavailable = errors.New("solver: solving service unavailable")

	// ErrUnsolvable means the service rejected the configuration as not
	// mechanically solvable. This is a final answer, not a retry case,
	// and must be surfaced to the user rather than papered over with an
	// invented move list.
	ErrUnsolvable = errors.New("solver: configuration is not solvable")
)

// Solver produces a solution for a facelet string (order U,R,F,D,L,B,
// row-major). An empty move sequence with a nil error means the cube is
// already solved.
type Solver interface {
	// Solve blocks until the external service answers or ctx is done.
	Solve(ctx context.Context, facelets string) ([]cubelab.Move, error)

	// Name identifies the solving backend for display and records.
	Name() string
}

// Pinger is implemented by solvers that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}
