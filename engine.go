package cubelab

// The move engine permutes sticker positions and is agnostic to their
// colors: any structurally valid cube can be turned, solved or not, even a
// partially painted one.
//
// Each face turn decomposes into two permutations applied atomically:
// the 9 stickers of the turning face rotate among themselves, and the ring
// of 12 border stickers on the four adjacent faces shifts by one group of
// three. Only the clockwise quarter turn is tabulated; a half turn is two
// plies and a counter-clockwise turn three.

// pos addresses a single sticker.
type pos struct {
	f    Face
	r, c int
}

// bands holds, for each turning face, the ordered ring of border sticker
// groups on its four adjacent faces. A clockwise turn moves group i's
// stickers to group i+1 (cyclically). Within each triple the read order
// preserves physical orientation across the shift: a group read
// left-to-right on one face may land top-to-bottom, or reversed, on the
// next.
var bands = [6][4][3]pos{
	FaceU: {
		{{FaceF, 0, 0}, {FaceF, 0, 1}, {FaceF, 0, 2}},
		{{FaceL, 0, 0}, {FaceL, 0, 1}, {FaceL, 0, 2}},
		{{FaceB, 0, 0}, {FaceB, 0, 1}, {FaceB, 0, 2}},
		{{FaceR, 0, 0}, {FaceR, 0, 1}, {FaceR, 0, 2}},
	},
	FaceD: {
		{{FaceF, 2, 0}, {FaceF, 2, 1}, {FaceF, 2, 2}},
		{{FaceR, 2, 0}, {FaceR, 2, 1}, {FaceR, 2, 2}},
		{{FaceB, 2, 0}, {FaceB, 2, 1}, {FaceB, 2, 2}},
		{{FaceL, 2, 0}, {FaceL, 2, 1}, {FaceL, 2, 2}},
	},
	FaceF: {
		{{FaceU, 2, 0}, {FaceU, 2, 1}, {FaceU, 2, 2}},
		{{FaceR, 0, 0}, {FaceR, 1, 0}, {FaceR, 2, 0}},
		{{FaceD, 0, 2}, {FaceD, 0, 1}, {FaceD, 0, 0}},
		{{FaceL, 2, 2}, {FaceL, 1, 2}, {FaceL, 0, 2}},
	},
	FaceB: {
		{{FaceU, 0, 2}, {FaceU, 0, 1}, {FaceU, 0, 0}},
		{{FaceL, 0, 0}, {FaceL, 1, 0}, {FaceL, 2, 0}},
		{{FaceD, 2, 0}, {FaceD, 2, 1}, {FaceD, 2, 2}},
		{{FaceR, 2, 2}, {FaceR, 1, 2}, {FaceR, 0, 2}},
	},
	FaceL: {
		{{FaceU, 0, 0}, {FaceU, 1, 0}, {FaceU, 2, 0}},
		{{FaceF, 0, 0}, {FaceF, 1, 0}, {FaceF, 2, 0}},
		{{FaceD, 0, 0}, {FaceD, 1, 0}, {FaceD, 2, 0}},
		{{FaceB, 2, 2}, {FaceB, 1, 2}, {FaceB, 0, 2}},
	},
	FaceR: {
		{{FaceU, 0, 2}, {FaceU, 1, 2}, {FaceU, 2, 2}},
		{{FaceB, 2, 0}, {FaceB, 1, 0}, {FaceB, 0, 0}},
		{{FaceD, 0, 2}, {FaceD, 1, 2}, {FaceD, 2, 2}},
		{{FaceF, 0, 2}, {FaceF, 1, 2}, {FaceF, 2, 2}},
	},
}

// Apply performs the given moves in order, mutating the cube in place.
// Applying a move and then its Inverse restores the prior state; a quarter
// turn applied four times, or a half turn twice, is the identity.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		plies := 1
		switch m.Turn {
		case Double:
			plies = 2
		case CCW:
			plies = 3
		}
		for i := 0; i < plies; i++ {
			c.turnCW(m.Face)
		}
	}
}

// turnCW applies one clockwise quarter turn.
func (c *Cube) turnCW(f Face) {
	c.rotateFaceCW(f)
	c.shiftBandCW(f)
}

// rotateFaceCW rotates the turning face's own 3x3 grid 90 degrees
// clockwise. The center sticker never moves.
func (c *Cube) rotateFaceCW(f Face) {
	old := c.Stickers[f]
	for r := 0; r < 3; r++ {
		for col := 0; col < 3; col++ {
			c.Stickers[f][r][col] = old[2-col][r]
		}
	}
}

// shiftBandCW shifts each band group's stickers to the next group in the
// ring.
func (c *Cube) shiftBandCW(f Face) {
	band := &bands[f]

	var vals [4][3]Color
	for i, group := range band {
		for j, p := range group {
			vals[i][j] = c.Stickers[p.f][p.r][p.c]
		}
	}

	for i, group := range band {
		src := vals[(i+3)%4]
		for j, p := range group {
			c.Stickers[p.f][p.r][p.c] = src[j]
		}
	}
}
