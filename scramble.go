package cubekit

import "math/rand"

// Scramble length bounds accepted by Generate.
const (
	MinScrambleMoves = 1
	MaxScrambleMoves = 100
)

// Generate produces a random scramble of n moves plus the state reached
// by applying it to the solved cube. n must be in [1,100].
//
// Moves are drawn uniformly from the 18 canonical moves, rejecting any
// candidate whose face matches the previous move's face or its opposite,
// so no two consecutive moves turn the same rotation axis.
func Generate(n int) (string, State, error) {
	return generate(nil, n)
}

// GenerateWithRand is Generate with an explicit random source, for
// deterministic scrambles.
func GenerateWithRand(rng *rand.Rand, n int) (string, State, error) {
	return generate(rng, n)
}

func generate(rng *rand.Rand, n int) (string, State, error) {
	if n < MinScrambleMoves || n > MaxScrambleMoves {
		return "", "", &RangeError{Param: "move count", Value: n, Min: MinScrambleMoves, Max: MaxScrambleMoves}
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	moves := make([]Move, 0, n)
	var lastFace Face
	for len(moves) < n {
		candidate := AllMoves[intn(len(AllMoves))]
		if candidate.Face == lastFace || candidate.Face == oppositeFace[lastFace] {
			continue
		}
		moves = append(moves, candidate)
		lastFace = candidate.Face
	}

	sequence := FormatSequence(moves)
	state, err := ApplyMoves(Solved(), moves)
	if err != nil {
		return "", "", err
	}
	return sequence, state, nil
}
