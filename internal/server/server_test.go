package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seamusw/cubelab"
	"github.com/seamusw/cubelab/internal/config"
	"github.com/seamusw/cubelab/internal/solver"
)

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// fakeSolver returns a canned answer without talking to the real service.
type fakeSolver struct {
	solution string
	err      error
	pingErr  error
}

func (f *fakeSolver) Solve(ctx context.Context, facelets string) ([]cubelab.Move, error) {
	if f.err != nil {
		return nil, f.err
	}
	return cubelab.ParseMoves(f.solution)
}

func (f *fakeSolver) Name() string { return "fake" }

func (f *fakeSolver) Ping(ctx context.Context) error { return f.pingErr }

func newTestServer(t *testing.T, slv solver.Solver) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	srv := New(cfg, slv, nil, "test")
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		t.Fatal(err)
	}
}

func TestSolveEndpoint(t *testing.T) {
	c := cubelab.Solved()
	moves, _ := cubelab.ParseMoves("R U R' U'")
	c.Apply(moves...)
	facelets, err := cubelab.EncodeFacelets(c)
	if err != nil {
		t.Fatal(err)
	}

	ts := newTestServer(t, &fakeSolver{solution: "U R U' R'"})
	resp := postJSON(t, ts.URL+"/api/solve", cubeRequest{Cube: facelets})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body solveResponse
	decodeBody(t, resp, &body)
	if !body.Success {
		t.Error("expected success")
	}
	if body.MovesCount != 4 {
		t.Errorf("moves_count = %d, want 4", body.MovesCount)
	}
	if body.SolutionString != "U R U' R'" {
		t.Errorf("solution_string = %q", body.SolutionString)
	}
	if len(body.Solution) != 4 || body.Solution[0] != "U" {
		t.Errorf("solution = %v", body.Solution)
	}
}

func TestSolveAlreadySolved(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{solution: ""})
	resp := postJSON(t, ts.URL+"/api/solve", cubeRequest{Cube: solvedFacelets})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body solveResponse
	decodeBody(t, resp, &body)
	if !body.Success || body.MovesCount != 0 {
		t.Errorf("got success=%v moves_count=%d, want empty solution success", body.Success, body.MovesCount)
	}
}

func TestSolveRejectsBadFacelets(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	// Schema rejects the wrong length before the handler decodes it.
	resp := postJSON(t, ts.URL+"/api/solve", cubeRequest{Cube: "UUU"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("short string: status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	// Right length and alphabet but ten U stickers.
	tenU := strings.Replace(solvedFacelets, "R", "U", 1)
	resp = postJSON(t, ts.URL+"/api/solve", cubeRequest{Cube: tenU})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad counts: status = %d, want 400", resp.StatusCode)
	}
	var body errorResponse
	decodeBody(t, resp, &body)
	if body.Success {
		t.Error("expected success=false")
	}
	if body.Error == "" {
		t.Error("expected an error message")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{err: solver.ErrUnsolvable})
	resp := postJSON(t, ts.URL+"/api/solve", cubeRequest{Cube: solvedFacelets})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestSolveServiceDown(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{err: solver.ErrUnavailable})
	resp := postJSON(t, ts.URL+"/api/solve", cubeRequest{Cube: solvedFacelets})
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestValidateEndpoint(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	resp := postJSON(t, ts.URL+"/api/validate", cubeRequest{Cube: solvedFacelets})
	var body validateResponse
	decodeBody(t, resp, &body)
	if !body.Success || !body.Valid {
		t.Errorf("solved cube: got %+v", body)
	}

	tenU := strings.Replace(solvedFacelets, "R", "U", 1)
	resp = postJSON(t, ts.URL+"/api/validate", cubeRequest{Cube: tenU})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 for an invalid but well-formed cube", resp.StatusCode)
	}
	decodeBody(t, resp, &body)
	if !body.Success || body.Valid {
		t.Errorf("bad counts: got %+v", body)
	}
	if body.Message == "" {
		t.Error("expected a message explaining the failure")
	}
}

func TestScrambleEndpoint(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	resp, err := http.Get(ts.URL + "/api/scramble?length=15")
	if err != nil {
		t.Fatal(err)
	}
	var body scrambleResponse
	decodeBody(t, resp, &body)
	if !body.Success {
		t.Error("expected success")
	}
	if len(body.Scramble) != 15 {
		t.Errorf("scramble length = %d, want 15", len(body.Scramble))
	}
	if _, err := cubelab.ParseMoves(body.ScrambleString); err != nil {
		t.Errorf("scramble_string does not parse: %v", err)
	}
}

func TestScrambleClampsLength(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	for _, tt := range []struct {
		query string
		want  int
	}{
		{"?length=5", config.MinScrambleLength},
		{"?length=100", config.MaxScrambleLength},
		{"", 20},
	} {
		resp, err := http.Get(ts.URL + "/api/scramble" + tt.query)
		if err != nil {
			t.Fatal(err)
		}
		var body scrambleResponse
		decodeBody(t, resp, &body)
		if len(body.Scramble) != tt.want {
			t.Errorf("%q: length = %d, want %d", tt.query, len(body.Scramble), tt.want)
		}
	}
}

func TestStatusEndpoint(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	resp, err := http.Get(ts.URL + "/api/status")
	if err != nil {
		t.Fatal(err)
	}
	var body statusResponse
	decodeBody(t, resp, &body)
	if !body.Success || body.Status != "running" {
		t.Errorf("got %+v", body)
	}
	if !body.SolverAvailable {
		t.Error("fake solver should report available")
	}
	if body.Version != "test" {
		t.Errorf("version = %q", body.Version)
	}
}

func TestPlaybackStream(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/playback"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	req := playbackRequest{Facelets: solvedFacelets, Moves: "R R'", IntervalMs: 50}
	if err := conn.WriteJSON(req); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	conn.SetReadDeadline(deadline)

	var frames []playbackFrame
	for {
		var frame playbackFrame
		if err := conn.ReadJSON(&frame); err != nil {
			t.Fatalf("after %d frames: %v", len(frames), err)
		}
		frames = append(frames, frame)
		if frame.Done {
			break
		}
	}

	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	if frames[0].Step != 0 || frames[0].Facelets != solvedFacelets {
		t.Errorf("first frame = %+v", frames[0])
	}
	if frames[1].Move != "R" {
		t.Errorf("second frame move = %q, want R", frames[1].Move)
	}
	if frames[2].Facelets != solvedFacelets {
		t.Errorf("final state = %q, want solved", frames[2].Facelets)
	}
}

func TestPlaybackRejectsBadRequest(t *testing.T) {
	ts := newTestServer(t, &fakeSolver{})

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/playback"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(playbackRequest{Facelets: "bad", Moves: "R"}); err != nil {
		t.Fatal(err)
	}
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var perr playbackError
	if err := conn.ReadJSON(&perr); err != nil {
		t.Fatal(err)
	}
	if perr.Error == "" {
		t.Error("expected an error payload")
	}
}
