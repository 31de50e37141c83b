package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/seamusw/cubelab"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type playbackRequest struct {
	Facelets   string `json:"facelets"`
	Moves      string `json:"moves"`
	IntervalMs int    `json:"interval_ms"`
}

type playbackFrame struct {
	Step     int    `json:"step"`
	Move     string `json:"move,omitempty"`
	Facelets string `json:"facelets"`
	Done     bool   `json:"done"`
}

type playbackError struct {
	Error string `json:"error"`
}

// handlePlayback upgrades the connection, reads one playback request and
// streams a frame per move until the sequence ends or the client goes away.
func (s *Server) handlePlayback(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		return
	}

	var req playbackRequest
	if err := decodeAndValidateBytes(raw, playbackRequestSchema, &req); err != nil {
		conn.WriteJSON(playbackError{Error: err.Error()})
		return
	}

	cube, err := cubelab.DecodeFacelets(req.Facelets)
	if err == nil {
		err = cube.Validate()
	}
	if err != nil {
		conn.WriteJSON(playbackError{Error: err.Error()})
		return
	}
	moves, err := cubelab.ParseMoves(req.Moves)
	if err != nil {
		conn.WriteJSON(playbackError{Error: err.Error()})
		return
	}

	interval := s.cfg.PlaybackInterval()
	if req.IntervalMs > 0 {
		interval = time.Duration(req.IntervalMs) * time.Millisecond
	}

	// First frame carries the starting state.
	if err := conn.WriteJSON(playbackFrame{Step: 0, Facelets: req.Facelets, Done: len(moves) == 0}); err != nil {
		return
	}
	if len(moves) == 0 {
		return
	}

	player := cubelab.NewPlayer(interval)
	player.Load(moves, cube)

	done := make(chan struct{})
	var once sync.Once
	finish := func() { once.Do(func() { close(done) }) }

	player.OnStep(func(step int, state *cubelab.Cube) {
		facelets, err := cubelab.EncodeFacelets(state)
		if err != nil {
			finish()
			return
		}
		frame := playbackFrame{Step: step, Facelets: facelets, Done: step == len(moves)}
		if step > 0 {
			frame.Move = moves[step-1].Notation()
		}
		if err := conn.WriteJSON(frame); err != nil {
			finish()
			return
		}
		if frame.Done {
			finish()
		}
	})

	player.Play()
	select {
	case <-done:
	case <-r.Context().Done():
	}
	player.Pause()
}
