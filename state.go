package cubekit

import "strings"

// State is a facelet-level cube state: 54 symbols from the alphabet
// U, R, F, D, L, B in face order Up, Right, Front, Down, Left, Back,
// each face row-major. State values are immutable; every operation
// returns a new value.
type State string

// StateLen is the number of facelets on a 3x3x3 cube.
const StateLen = 54

// solvedState lists each face's 9 facelets in face order.
const solvedState State = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

// Solved returns the solved cube state.
func Solved() State { return solvedState }

// IsSolved reports whether s is exactly the solved state.
func (s State) IsSolved() bool { return s == solvedState }

// Face extracts the 9 facelets of one face, row-major.
// It returns an empty string if s is not 54 symbols long.
func (s State) Face(f Face) string {
	if len(s) != StateLen {
		return ""
	}
	base := faceBase[f]
	return string(s[base : base+9])
}

// CheckSymbols verifies that s is 54 facelets drawn from the canonical
// alphabet. It returns a MalformedStateError on a bad length and an
// UnknownSymbolError for the first facelet outside U, R, F, D, L, B.
func (s State) CheckSymbols() error {
	if err := s.checkLen(); err != nil {
		return err
	}
	for i := 0; i < StateLen; i++ {
		if strings.IndexByte("URFDLB", s[i]) < 0 {
			return &UnknownSymbolError{Symbol: s[i], Index: i}
		}
	}
	return nil
}

// checkLen returns a MalformedStateError unless s has exactly 54 symbols.
func (s State) checkLen() error {
	if len(s) != StateLen {
		return &MalformedStateError{Length: len(s)}
	}
	return nil
}
