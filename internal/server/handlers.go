package server

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/solver"
)

type cubeRequest struct {
	Cube string `json:"cube"`
}

type solveResponse struct {
	Success        bool     `json:"success"`
	Solution       []string `json:"solution"`
	MovesCount     int      `json:"moves_count"`
	SolutionString string   `json:"solution_string"`
	SolveID        string   `json:"solve_id,omitempty"`
}

type validateResponse struct {
	Success bool   `json:"success"`
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

type scrambleResponse struct {
	Success        bool     `json:"success"`
	Scramble       []string `json:"scramble"`
	ScrambleString string   `json:"scramble_string"`
}

type statusResponse struct {
	Success         bool   `json:"success"`
	Status          string `json:"status"`
	Solver          string `json:"solver"`
	SolverAvailable bool   `json:"solver_available"`
	Version         string `json:"version"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Success: false, Error: msg})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req cubeRequest
	if err := decodeAndValidate(r.Body, cubeRequestSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cube, err := cubelab.DecodeFacelets(req.Cube)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := cube.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.SolverTimeout())
	defer cancel()

	start := time.Now()
	moves, err := s.solver.Solve(ctx, req.Cube)
	if err != nil {
		switch {
		case errors.Is(err, solver.ErrUnsolvable):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, solver.ErrUnavailable):
			writeError(w, http.StatusServiceUnavailable, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	duration := time.Since(start)

	resp := solveResponse{
		Success:        true,
		Solution:       make([]string, 0, len(moves)),
		MovesCount:     len(moves),
		SolutionString: cubelab.FormatMoves(moves),
	}
	for _, m := range moves {
		resp.Solution = append(resp.Solution, m.Notation())
	}

	if s.solves != nil {
		id, err := s.solves.Create(req.Cube, resp.SolutionString, len(moves), duration, s.solver.Name())
		if err == nil {
			resp.SolveID = id
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req cubeRequest
	if err := decodeAndValidate(r.Body, cubeRequestSchema, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := validateResponse{Success: true, Valid: true, Message: "cube state is valid"}
	cube, err := cubelab.DecodeFacelets(req.Cube)
	if err == nil {
		err = cube.Validate()
	}
	if err != nil {
		resp.Valid = false
		resp.Message = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScramble(w http.ResponseWriter, r *http.Request) {
	length := s.cfg.ScrambleLength
	if raw := r.URL.Query().Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "length must be an integer")
			return
		}
		length = n
	}
	length = s.cfg.ClampScrambleLength(length)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	moves := cubelab.Scramble(length, rng)

	resp := scrambleResponse{
		Success:        true,
		Scramble:       make([]string, 0, len(moves)),
		ScrambleString: cubelab.FormatMoves(moves),
	}
	for _, m := range moves {
		resp.Scramble = append(resp.Scramble, m.Notation())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	available := false
	if p, ok := s.solver.(solver.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		available = p.Ping(ctx) == nil
	}
	writeJSON(w, http.StatusOK, statusResponse{
		Success:         true,
		Status:          "running",
		Solver:          s.solver.Name(),
		SolverAvailable: available,
		Version:         s.version,
	})
}
