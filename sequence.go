package cubekit

import "strings"

// SequenceLength counts the whitespace-separated tokens in a move
// sequence. Empty or whitespace-only input has length 0. The tokens are
// not validated; use IsValidSequence for that.
func SequenceLength(sequence string) int {
	return len(strings.Fields(sequence))
}

// ReverseSequence returns the sequence that undoes the given one: tokens
// in reverse order, each replaced by its inverse (quarter turns flip
// direction, half turns are self-inverse). Any malformed token fails the
// whole operation.
func ReverseSequence(sequence string) (string, error) {
	moves, err := ParseSequence(sequence)
	if err != nil {
		return "", err
	}
	reversed := make([]Move, len(moves))
	for i, m := range moves {
		reversed[len(moves)-1-i] = m.Inverse()
	}
	return FormatSequence(reversed), nil
}

// IsValidSequence reports whether every token in the sequence is one of
// the 18 canonical move strings. Empty input is valid.
func IsValidSequence(sequence string) bool {
	_, err := ParseSequence(sequence)
	return err == nil
}

// OptimizeSequence folds each maximal run of consecutive same-face tokens
// into the single net rotation (sum of quarter turns mod 4); a net
// rotation of zero emits nothing. The optimization is strictly local: a
// run ends at the first differing face, even when the intervening face
// commutes with the run's face.
func OptimizeSequence(sequence string) (string, error) {
	moves, err := ParseSequence(sequence)
	if err != nil {
		return "", err
	}

	var optimized []Move
	for i := 0; i < len(moves); {
		face := moves[i].Face
		total := 0
		j := i
		for j < len(moves) && moves[j].Face == face {
			total += int(moves[j].Turn)
			j++
		}
		if net := total % 4; net != 0 {
			optimized = append(optimized, Move{Face: face, Turn: Turn(net)})
		}
		i = j
	}
	return FormatSequence(optimized), nil
}
