package cubelab

import "strings"

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise quarter turn (viewed from outside the face)
	CCW    Turn = -1 // Counter-clockwise quarter turn
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single face turn. Moves are immutable values; a
// solution or scramble is an ordered []Move, replayable deterministically.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.Face.String() + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	// Double is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation token into a Move: one face letter
// from UDFBLR, optionally followed by ' (counter-clockwise) or 2 (half turn).
func ParseMove(s string) (Move, error) {
	token := strings.TrimSpace(s)
	if len(token) == 0 {
		return Move{}, &ParseError{Token: s}
	}

	var face Face
	switch token[0] {
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	case 'L', 'l':
		face = FaceL
	case 'R', 'r':
		face = FaceR
	default:
		return Move{}, &ParseError{Token: token}
	}

	turn := CW
	if len(token) > 1 {
		switch token[1:] {
		case "'", "`":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, &ParseError{Token: token}
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a whitespace-separated move sequence such as "R U R' U'".
// The first invalid token aborts the parse; valid prefixes are not returned.
func ParseMoves(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, field := range fields {
		m, err := ParseMove(field)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves formats a move sequence as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves: each move inverted,
// in reverse order.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
