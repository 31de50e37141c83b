// Package mcpserver exposes the cube toolbox over the Model Context
// Protocol so an LLM client can validate, scramble and solve cubes over
// stdio.
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/config"
	"github.com/seamusw/cubelab/internal/solver"
	"github.com/seamusw/cubelab/internal/storage"
)

// Server wires the cube operations into an MCP tool server.
type Server struct {
	cfg       config.Config
	solver    solver.Solver
	solves    *storage.SolveRepository // nil disables history
	mcpServer *server.MCPServer
}

// New builds the tool server. solves may be nil.
func New(cfg config.Config, slv solver.Solver, solves *storage.SolveRepository, version string) *Server {
	s := &Server{
		cfg:    cfg,
		solver: slv,
		solves: solves,
	}

	s.mcpServer = server.NewMCPServer(
		"Cubelab",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Cubelab - Rubik's cube toolbox

Cube states are 54-character facelet strings in URFDLB face order, nine
stickers per face read left to right, top to bottom. The solved cube is
"UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB".
Moves use standard notation: U D F B L R, with ' for counter-clockwise
and 2 for half turns.

AVAILABLE TOOLS:
- solve_cube: Solve a cube state via the external solver service
- validate_cube: Check whether a cube state is well formed
- scramble: Generate a random scramble sequence
- apply_moves: Apply a move sequence to a cube state
- show_cube: Render a cube state as an unfolded net`),
	)

	s.registerTools()
	return s
}

// MCPServer returns the underlying server for stdio serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio blocks serving MCP requests on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	cubeProp := map[string]interface{}{
		"type":        "string",
		"description": "54-character facelet string in URFDLB order",
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "solve_cube",
		Description: "Solve a cube state, returning the move sequence that restores it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cube": cubeProp,
			},
			Required: []string{"cube"},
		},
	}, s.handleSolve)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_cube",
		Description: "Check whether a cube state is well formed (54 stickers, nine of each color)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cube": cubeProp,
			},
			Required: []string{"cube"},
		},
	}, s.handleValidate)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "scramble",
		Description: "Generate a random scramble sequence and the state it produces",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"length": map[string]interface{}{
					"type":        "integer",
					"description": "Number of moves, clamped to [10, 30] (default 20)",
				},
			},
		},
	}, s.handleScramble)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "apply_moves",
		Description: "Apply a move sequence to a cube state and return the result",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cube": cubeProp,
				"moves": map[string]interface{}{
					"type":        "string",
					"description": "Space-separated moves, e.g. \"R U R' U'\"",
				},
			},
			Required: []string{"cube", "moves"},
		},
	}, s.handleApplyMoves)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "show_cube",
		Description: "Render a cube state as an unfolded net",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"cube": cubeProp,
			},
			Required: []string{"cube"},
		},
	}, s.handleShow)
}

func cubeArg(request mcp.CallToolRequest) (string, *cubelab.Cube, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return "", nil, fmt.Errorf("missing arguments")
	}
	facelets, _ := args["cube"].(string)
	cube, err := cubelab.DecodeFacelets(facelets)
	if err != nil {
		return facelets, nil, err
	}
	if err := cube.Validate(); err != nil {
		return facelets, nil, err
	}
	return facelets, cube, nil
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	facelets, _, err := cubeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.SolverTimeout())
	defer cancel()

	start := time.Now()
	moves, err := s.solver.Solve(ctx, facelets)
	if err != nil {
		switch {
		case errors.Is(err, solver.ErrUnsolvable):
			return mcp.NewToolResultError("cube state is not solvable: " + err.Error()), nil
		case errors.Is(err, solver.ErrUnavailable):
			return mcp.NewToolResultError("solver service is unavailable: " + err.Error()), nil
		default:
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	if s.solves != nil {
		s.solves.Create(facelets, cubelab.FormatMoves(moves), len(moves), time.Since(start), s.solver.Name())
	}

	if len(moves) == 0 {
		return mcp.NewToolResultText("Cube is already solved."), nil
	}
	result := fmt.Sprintf("Solution (%d moves):\n%s", len(moves), cubelab.FormatMoves(moves))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleValidate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, cube, err := cubeArg(request)
	if err != nil {
		return mcp.NewToolResultText("Invalid: " + err.Error()), nil
	}
	if cube.IsSolved() {
		return mcp.NewToolResultText("Valid. The cube is already solved."), nil
	}
	return mcp.NewToolResultText("Valid cube state."), nil
}

func (s *Server) handleScramble(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	length := s.cfg.ScrambleLength
	if args, ok := request.Params.Arguments.(map[string]interface{}); ok {
		if n, ok := args["length"].(float64); ok {
			length = int(n)
		}
	}
	length = s.cfg.ClampScrambleLength(length)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	moves := cubelab.Scramble(length, rng)

	cube := cubelab.Solved()
	cube.Apply(moves...)
	facelets, err := cubelab.EncodeFacelets(cube)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scramble (%d moves):\n%s\n\nResulting state:\n%s", len(moves), cubelab.FormatMoves(moves), facelets)
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleApplyMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, cube, err := cubeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	args := request.Params.Arguments.(map[string]interface{})
	notation, _ := args["moves"].(string)
	moves, err := cubelab.ParseMoves(notation)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cube.Apply(moves...)
	facelets, err := cubelab.EncodeFacelets(cube)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Applied %d moves.\n\nResulting state:\n%s", len(moves), facelets)
	if cube.IsSolved() {
		result += "\n\nThe cube is now solved."
	}
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleShow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, cube, err := cubeArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(cube.String()), nil
}
