package cubelab

import (
	"errors"
	"sync"
	"time"
)

// ErrStepOutOfRange is returned by Player.JumpTo for steps outside [0, N].
var ErrStepOutOfRange = errors.New("cubelab: step outside move sequence")

// DefaultStepInterval is the autoplay period when none is configured.
const DefaultStepInterval = 800 * time.Millisecond

// Player replays a move sequence over a cube one step at a time.
//
// The cursor runs over [0, N] for a sequence of N moves: 0 means no move
// applied yet, N means fully applied. Stepping backward or jumping
// recomputes from the loaded snapshot rather than undoing moves; sequences
// are short enough that replaying from the origin is simpler than inverse
// bookkeeping.
//
// The only concurrent piece is the autoplay timer. Pause stops it
// synchronously: once Pause returns, no further step will fire.
type Player struct {
	mu       sync.Mutex
	origin   *Cube
	state    *Cube
	moves    []Move
	cursor   int
	playing  bool
	interval time.Duration
	stop     chan struct{}
	onStep   func(step int, state *Cube)
}

// NewPlayer creates an empty player with the given autoplay interval.
// A non-positive interval selects DefaultStepInterval.
func NewPlayer(interval time.Duration) *Player {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	return &Player{
		origin:   NewCube(),
		state:    NewCube(),
		interval: interval,
	}
}

// Load snapshots initial and rewinds the cursor to 0. The caller's cube is
// deep-copied and never mutated by playback. Loading while autoplaying
// pauses first, discarding current progress, so Load doubles as reload.
func (p *Player) Load(moves []Move, initial *Cube) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
	p.origin = initial.Snapshot()
	p.state = initial.Snapshot()
	p.moves = append([]Move(nil), moves...)
	p.cursor = 0
}

// OnStep registers a callback fired after each autoplay step with the step
// index and a copy of the state. Manual steps do not fire it.
func (p *Player) OnStep(fn func(step int, state *Cube)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStep = fn
}

// StepForward applies the move at the cursor and advances it. It reports
// false when the cursor is already at the end.
func (p *Player) StepForward() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stepForwardLocked()
}

func (p *Player) stepForwardLocked() bool {
	if p.cursor >= len(p.moves) {
		return false
	}
	p.state.Apply(p.moves[p.cursor])
	p.cursor++
	return true
}

// StepBackward rewinds the cursor by one, re-deriving the state from the
// snapshot. It reports false when the cursor is already at 0.
func (p *Player) StepBackward() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor == 0 {
		return false
	}
	p.jumpLocked(p.cursor - 1)
	return true
}

// JumpTo moves the cursor to an arbitrary step in [0, N].
func (p *Player) JumpTo(step int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if step < 0 || step > len(p.moves) {
		return ErrStepOutOfRange
	}
	p.jumpLocked(step)
	return nil
}

func (p *Player) jumpLocked(step int) {
	p.state = p.origin.Snapshot()
	p.state.Apply(p.moves[:step]...)
	p.cursor = step
}

// Play starts the autoplay timer, stepping forward once per interval until
// the sequence is exhausted. Playing while already at the end is a no-op.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing || p.cursor >= len(p.moves) {
		return
	}
	p.playing = true
	p.stop = make(chan struct{})
	go p.run(p.stop, p.interval)
}

func (p *Player) run(stop chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.mu.Lock()
			if !p.playing {
				// Pause won the race between the tick firing and the
				// lock being acquired.
				p.mu.Unlock()
				return
			}
			p.stepForwardLocked()
			done := p.cursor >= len(p.moves)
			if done {
				p.playing = false
				p.stop = nil
			}
			step := p.cursor
			cb := p.onStep
			var snap *Cube
			if cb != nil {
				snap = p.state.Snapshot()
			}
			p.mu.Unlock()

			if cb != nil {
				cb(step, snap)
			}
			if done {
				return
			}
		}
	}
}

// Pause stops autoplay. When Pause returns no further step can fire: the
// timer goroutine only steps while holding the same lock Pause holds, and
// it re-checks the playing flag after acquiring it.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pauseLocked()
}

func (p *Player) pauseLocked() {
	if !p.playing {
		return
	}
	p.playing = false
	close(p.stop)
	p.stop = nil
}

// Playing reports whether autoplay is running.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Cursor returns the current step index in [0, N].
func (p *Player) Cursor() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor
}

// Len returns the number of moves loaded.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.moves)
}

// Done reports whether every loaded move has been applied.
func (p *Player) Done() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cursor == len(p.moves)
}

// NextMove returns the move the next StepForward would apply.
func (p *Player) NextMove() (Move, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cursor >= len(p.moves) {
		return Move{}, false
	}
	return p.moves[p.cursor], true
}

// Moves returns a copy of the loaded sequence.
func (p *Player) Moves() []Move {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Move(nil), p.moves...)
}

// State returns a copy of the current working cube.
func (p *Player) State() *Cube {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Snapshot()
}
