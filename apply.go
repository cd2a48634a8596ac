package cubekit

// Apply performs a single face turn on a 54-facelet state and returns the
// new state. The state must be exactly 54 symbols, but it does not have
// to be a legal cube configuration: Apply only permutes indices, so it is
// safe on arbitrary intermediates. Use Validate to check legality.
func Apply(s State, m Move) (State, error) {
	if err := s.checkLen(); err != nil {
		return "", err
	}
	cycles, ok := moveCycles[m.Face]
	if !ok {
		return "", &UnknownMoveError{Token: m.Notation()}
	}

	steps := int(m.Turn) % 4
	if steps < 0 {
		steps += 4
	}

	buf := []byte(s)
	for i := 0; i < steps; i++ {
		for _, c := range cycles {
			cycleOnce(buf, c)
		}
	}
	return State(buf), nil
}

// cycleOnce rotates the facelets at the four cycle positions one step:
// the value at c[0] moves to c[1], c[1] to c[2], c[2] to c[3], and c[3]
// wraps around to c[0].
func cycleOnce(buf []byte, c [4]int) {
	last := buf[c[3]]
	buf[c[3]] = buf[c[2]]
	buf[c[2]] = buf[c[1]]
	buf[c[1]] = buf[c[0]]
	buf[c[0]] = last
}

// ApplyMoves folds Apply over a parsed move list, left to right.
func ApplyMoves(s State, moves []Move) (State, error) {
	cur := s
	for _, m := range moves {
		next, err := Apply(cur, m)
		if err != nil {
			return "", err
		}
		cur = next
	}
	return cur, nil
}

// ApplySequence parses a notation string and applies it left to right.
// An empty or whitespace-only sequence is the identity.
func ApplySequence(s State, sequence string) (State, error) {
	moves, err := ParseSequence(sequence)
	if err != nil {
		return "", err
	}
	return ApplyMoves(s, moves)
}
