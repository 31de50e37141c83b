// Package cubelab models a 3x3 Rubik's cube as 54 editable stickers and
// provides the move engine, notation codec, solver-string encoding,
// scramble generation, and step playback that the cubelab applications are
// built on.
//
// # Editing and validating
//
// A Cube starts with every sticker Unset and is painted one sticker at a
// time, the way a user copies a physical cube into the app:
//
//	c := cubelab.NewCube()
//	c.Set(cubelab.FaceU, 0, 0, cubelab.White)
//	// ... 53 more ...
//	if err := c.Validate(); err != nil {
//	    // incomplete, wrong color counts, or wrong color variety
//	}
//
// Partial states are legal data; Validate only gates the hand-off to a
// solver, via the 54-character facelet string:
//
//	s, err := cubelab.EncodeFacelets(c)
//
// # Moves
//
// Moves use standard face notation (R, R', R2, ...):
//
//	moves, _ := cubelab.ParseMoves("R U R' U'")
//	c := cubelab.Solved()
//	c.Apply(moves...)
//
// The engine permutes positions, not meanings: it happily turns scrambled,
// invalid, or half-painted cubes.
//
// # Playback
//
// A Player replays a solution over a snapshot, one move per step, with
// forward/backward/jump navigation and timed autoplay:
//
//	p := cubelab.NewPlayer(0)
//	p.Load(moves, c)
//	p.StepForward()
//
// Solving itself is external: internal/solver ships an HTTP client for a
// facelet-string solving service. This package never fabricates solutions.
package cubelab
