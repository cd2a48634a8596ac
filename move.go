package cubekit

import "strings"

// Turn is the magnitude of a face turn in clockwise quarter turns.
type Turn int

const (
	CW     Turn = 1 // Clockwise quarter turn
	Double Turn = 2 // Half turn (180 degrees)
	CCW    Turn = 3 // Counter-clockwise quarter turn (three clockwise quarters)
)

// Move is a single face turn: which face, and how far clockwise.
type Move struct {
	Face Face
	Turn Turn
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2.
func (m Move) Notation() string {
	switch m.Turn {
	case CCW:
		return string(m.Face) + "'"
	case Double:
		return string(m.Face) + "2"
	default:
		return string(m.Face)
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes this one.
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

// ParseMove parses a standard notation token into a Move.
// The token must be FACE, FACE' or FACE2 with FACE one of U, D, R, L,
// F, B. An unrecognized face letter yields an UnknownMoveError; a
// recognized face with a malformed suffix yields an
// InvalidMoveTokenError. Malformed tokens are never coerced.
func ParseMove(token string) (Move, error) {
	if len(token) == 0 {
		return Move{}, &InvalidMoveTokenError{Token: token}
	}

	face := Face(token[0])
	if _, ok := faceBase[face]; !ok {
		return Move{}, &UnknownMoveError{Token: token}
	}

	turn := CW
	if len(token) > 1 {
		switch token[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		default:
			return Move{}, &InvalidMoveTokenError{Token: token}
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseSequence parses a whitespace-separated sequence of move tokens.
// An empty or whitespace-only string parses to an empty sequence. Any
// malformed token fails the whole parse.
func ParseSequence(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatSequence formats moves as a space-separated notation string.
func FormatSequence(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}
