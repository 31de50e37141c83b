package cubelab

import (
	"math/rand"
	"testing"
)

func TestScrambleLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 20, 30} {
		moves := Scramble(n, rng)
		if len(moves) != n {
			t.Errorf("Scramble(%d) returned %d moves", n, len(moves))
		}
	}
}

func TestScrambleDrawsFromFullMoveSpace(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := make(map[Move]int)
	for _, m := range Scramble(5000, rng) {
		seen[m]++
	}

	if len(seen) != 18 {
		t.Fatalf("Saw %d distinct moves over 5000 draws, want all 18", len(seen))
	}

	// Uniform sampling: each move expects ~278 of 5000. A loose band is
	// enough to catch a biased or truncated move table.
	for m, n := range seen {
		if n < 150 || n > 450 {
			t.Errorf("Move %v drawn %d times, outside plausible uniform range", m, n)
		}
	}
}

func TestScrambleDeterministicPerSeed(t *testing.T) {
	a := Scramble(20, rand.New(rand.NewSource(5)))
	b := Scramble(20, rand.New(rand.NewSource(5)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Same seed diverged at move %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRandomBalancedIsBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	c := RandomBalanced(rng)

	if err := c.Validate(); err != nil {
		t.Errorf("Balanced paint should validate, got %v", err)
	}
	for color, n := range c.ColorHistogram() {
		if n != 9 {
			t.Errorf("Color %s appears %d times, want 9", color, n)
		}
	}
}

func TestRandomBalancedVaries(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	a := RandomBalanced(rng)
	b := RandomBalanced(rng)
	if a.Equal(b) {
		t.Error("Two balanced paints from a running rng should differ")
	}
}
