package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seamusw/cubelab"
)

// HTTPSolver talks to a two-phase solving service over HTTP.
//
// Wire contract: POST {base}/solve with body {"cube": "<54 facelets>"}.
// The service answers 200 with {"solution": "R U R' ..."} (empty string
// for an already-solved cube), 4xx with {"error": "..."} for an
// unsolvable configuration, and anything else is treated as the service
// being unavailable.
type HTTPSolver struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSolver creates a solver client for the service at baseURL.
// A zero timeout defaults to 30s; two-phase solvers usually answer in
// well under a second, but first calls may pay a table-generation cost.
func NewHTTPSolver(baseURL string, timeout time.Duration) *HTTPSolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSolver{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name implements Solver.
func (s *HTTPSolver) Name() string { return "two-phase@" + s.baseURL }

type solveRequest struct {
	Cube string `json:"cube"`
}

type solveResponse struct {
	Solution string `json:"solution"`
	Error    string `json:"error"`
}

// Solve implements Solver.
func (s *HTTPSolver) Solve(ctx context.Context, facelets string) ([]cubelab.Move, error) {
	body, err := json.Marshal(solveRequest{Cube: facelets})
	if err != nil {
		return nil, fmt.Errorf("solver: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("solver: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var decoded solveResponse
	switch {
	case resp.StatusCode == http.StatusOK:
		if err := json.Unmarshal(payload, &decoded); err != nil {
			return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
		}
		moves, err := cubelab.ParseMoves(decoded.Solution)
		if err != nil {
			return nil, fmt.Errorf("solver: service returned bad notation: %w", err)
		}
		return moves, nil

	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if err := json.Unmarshal(payload, &decoded); err == nil && decoded.Error != "" {
			return nil, fmt.Errorf("%w: %s", ErrUnsolvable, decoded.Error)
		}
		return nil, ErrUnsolvable

	default:
		return nil, fmt.Errorf("%w: service returned status %d", ErrUnavailable, resp.StatusCode)
	}
}

// Ping implements Pinger with a GET against the service root.
func (s *HTTPSolver) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: service returned status %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}
