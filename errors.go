package cubelab

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubelab package.
var (
	// ErrOutOfRange is returned for sticker coordinates outside the
	// 6 faces x 3 rows x 3 columns grid.
	ErrOutOfRange = errors.New("cubelab: sticker coordinates out of range")

	// ErrInvalidNotation is the base error wrapped by ParseError.
	ErrInvalidNotation = errors.New("cubelab: invalid move notation")
)

// IncompleteError reports a cube with fewer than 54 painted stickers.
type IncompleteError struct {
	Count int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("cubelab: cube must have all 54 stickers colored, currently has %d", e.Count)
}

// ColorCountError reports a color that does not appear exactly 9 times.
type ColorCountError struct {
	Color Color
	Count int
}

func (e *ColorCountError) Error() string {
	return fmt.Sprintf("cubelab: color %s appears %d times, should be 9", e.Color, e.Count)
}

// ColorVarietyError reports a cube without exactly 6 distinct colors.
type ColorVarietyError struct {
	Count int
}

func (e *ColorVarietyError) Error() string {
	return fmt.Sprintf("cubelab: cube must have exactly 6 colors, found %d", e.Count)
}

// ParseError reports a move token that is not valid notation.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cubelab: invalid move notation %q", e.Token)
}

func (e *ParseError) Unwrap() error { return ErrInvalidNotation }

// EncodeError reports a sticker color with no canonical face mapping.
// Validate runs before encoding, so hitting this means a validation gap
// upstream rather than a user mistake.
type EncodeError struct {
	Color Color
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cubelab: color %s has no facelet letter", e.Color)
}
