package cubelab

import (
	"testing"
	"time"
)

func loadedPlayer(t *testing.T) (*Player, *Cube, []Move) {
	t.Helper()
	moves, err := ParseMoves("R U F'")
	if err != nil {
		t.Fatalf("ParseMoves failed: %v", err)
	}
	start := Solved()
	p := NewPlayer(10 * time.Millisecond)
	p.Load(moves, start)
	return p, start, moves
}

func TestPlayerLoadStartsAtZero(t *testing.T) {
	p, start, _ := loadedPlayer(t)
	if p.Cursor() != 0 {
		t.Errorf("Cursor = %d, want 0", p.Cursor())
	}
	if p.Playing() {
		t.Error("Player should not be playing after Load")
	}
	if !p.State().Equal(start) {
		t.Error("Initial state should equal the loaded cube")
	}
}

func TestPlayerStepForward(t *testing.T) {
	p, start, moves := loadedPlayer(t)

	for i := 1; i <= 3; i++ {
		if !p.StepForward() {
			t.Fatalf("StepForward %d reported end of sequence", i)
		}
		if p.Cursor() != i {
			t.Errorf("Cursor = %d, want %d", p.Cursor(), i)
		}
	}
	if p.StepForward() {
		t.Error("StepForward past the end should report false")
	}
	if !p.Done() {
		t.Error("Player should be done at cursor 3")
	}

	want := start.Snapshot()
	want.Apply(moves...)
	if !p.State().Equal(want) {
		t.Error("Stepped state should equal the moves applied directly")
		t.Log(p.State().String())
	}
}

func TestPlayerStepBackward(t *testing.T) {
	p, start, moves := loadedPlayer(t)
	p.StepForward()
	p.StepForward()
	p.StepForward()

	if !p.StepBackward() {
		t.Fatal("StepBackward from cursor 3 should succeed")
	}
	if p.Cursor() != 2 {
		t.Errorf("Cursor = %d, want 2", p.Cursor())
	}

	want := start.Snapshot()
	want.Apply(moves[:2]...)
	if !p.State().Equal(want) {
		t.Error("State after stepping back should equal the first two moves")
	}
}

func TestPlayerStepBackwardAtZero(t *testing.T) {
	p, _, _ := loadedPlayer(t)
	if p.StepBackward() {
		t.Error("StepBackward at cursor 0 should report false")
	}
}

func TestPlayerJump(t *testing.T) {
	p, start, moves := loadedPlayer(t)
	if err := p.JumpTo(3); err != nil {
		t.Fatalf("JumpTo(3) failed: %v", err)
	}

	want := start.Snapshot()
	want.Apply(moves...)
	if !p.State().Equal(want) {
		t.Error("JumpTo(3) should equal all moves applied")
	}

	if err := p.JumpTo(0); err != nil {
		t.Fatalf("JumpTo(0) failed: %v", err)
	}
	if !p.State().Equal(start) {
		t.Error("JumpTo(0) should restore the exact loaded snapshot")
	}

	if err := p.JumpTo(4); err != ErrStepOutOfRange {
		t.Errorf("JumpTo(4) = %v, want ErrStepOutOfRange", err)
	}
	if err := p.JumpTo(-1); err != ErrStepOutOfRange {
		t.Errorf("JumpTo(-1) = %v, want ErrStepOutOfRange", err)
	}
}

func TestPlayerSnapshotIsolation(t *testing.T) {
	p, start, _ := loadedPlayer(t)
	p.StepForward()
	if !start.IsSolved() {
		t.Error("Playback must never mutate the caller's cube")
	}
}

func TestPlayerNextMove(t *testing.T) {
	p, _, moves := loadedPlayer(t)
	m, ok := p.NextMove()
	if !ok || m != moves[0] {
		t.Errorf("NextMove = %v,%v, want %v", m, ok, moves[0])
	}
	p.JumpTo(3)
	if _, ok := p.NextMove(); ok {
		t.Error("NextMove at the end should report false")
	}
}

func TestPlayerAutoplayRunsToEnd(t *testing.T) {
	p, _, _ := loadedPlayer(t)

	done := make(chan int, 4)
	p.OnStep(func(step int, _ *Cube) {
		done <- step
	})
	p.Play()
	if !p.Playing() {
		t.Fatal("Play should start autoplay")
	}

	deadline := time.After(2 * time.Second)
	last := -1
	for last != 3 {
		select {
		case last = <-done:
		case <-deadline:
			t.Fatalf("Autoplay stalled at step %d", last)
		}
	}

	// The final step forces playing false.
	for i := 0; i < 100 && p.Playing(); i++ {
		time.Sleep(5 * time.Millisecond)
	}
	if p.Playing() {
		t.Error("Autoplay should stop when the cursor reaches the end")
	}
	if p.Cursor() != 3 {
		t.Errorf("Cursor = %d, want 3", p.Cursor())
	}
}

func TestPlayerPauseStopsStepping(t *testing.T) {
	p, _, _ := loadedPlayer(t)
	p.Play()
	p.Pause()

	// After Pause returns no further step may fire.
	at := p.Cursor()
	time.Sleep(60 * time.Millisecond)
	if got := p.Cursor(); got != at {
		t.Errorf("Cursor advanced from %d to %d after Pause returned", at, got)
	}
	if p.Playing() {
		t.Error("Playing should be false after Pause")
	}
}

func TestPlayerReload(t *testing.T) {
	p, _, _ := loadedPlayer(t)
	p.StepForward()
	p.Play()

	next, err := ParseMoves("L2 D")
	if err != nil {
		t.Fatal(err)
	}
	p.Load(next, Solved())

	if p.Cursor() != 0 {
		t.Errorf("Cursor = %d after reload, want 0", p.Cursor())
	}
	if p.Playing() {
		t.Error("Reload should pause autoplay")
	}
	if p.Len() != 2 {
		t.Errorf("Len = %d, want 2", p.Len())
	}
}

func TestPlayerPlayAtEndIsNoop(t *testing.T) {
	p, _, _ := loadedPlayer(t)
	p.JumpTo(3)
	p.Play()
	if p.Playing() {
		t.Error("Play at the end of the sequence should not start")
	}
}
