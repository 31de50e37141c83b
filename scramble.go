package cubelab

import "math/rand"

// Scramble returns length random legal moves, each drawn independently and
// uniformly from the 18-move space. Consecutive same-face or opposite-face
// moves are not filtered out, so a scramble of length n may be effectively
// shorter; callers wanting competition-grade scrambles should post-process.
func Scramble(length int, rng *rand.Rand) []Move {
	moves := make([]Move, length)
	for i := range moves {
		moves[i] = AllMoves[rng.Intn(len(AllMoves))]
	}
	return moves
}

// RandomBalanced paints a uniformly random permutation of the balanced
// 54-sticker multiset (9 stickers of each color) onto a fresh cube.
//
// This is NOT a scramble: almost all such configurations are mechanically
// impossible, unreachable from solved by any move sequence. It exists to
// fill a display cube with plausible-looking colors, and its output passes
// Validate but will usually be rejected by a real solver. Use Scramble plus
// Apply for a legally reachable state.
func RandomBalanced(rng *rand.Rand) *Cube {
	stickers := make([]Color, 0, 54)
	for _, color := range Colors {
		for i := 0; i < 9; i++ {
			stickers = append(stickers, color)
		}
	}
	rng.Shuffle(len(stickers), func(i, j int) {
		stickers[i], stickers[j] = stickers[j], stickers[i]
	})

	c := NewCube()
	i := 0
	for _, f := range Faces {
		for r := 0; r < 3; r++ {
			for col := 0; col < 3; col++ {
				c.Stickers[f][r][col] = stickers[i]
				i++
			}
		}
	}
	return c
}
