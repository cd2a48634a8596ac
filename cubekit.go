// Package cubekit provides a facelet-level state engine for the 3x3x3
// Rubik's cube: move application, scramble generation, move-sequence
// algebra, format conversion, and structural validation.
//
// # State representation
//
// A cube state is a string of exactly 54 symbols drawn from the alphabet
// U, R, F, D, L, B, one symbol per facelet. Faces appear in the fixed
// order Up, Right, Front, Down, Left, Back, each laid out row-major as a
// 3x3 grid:
//
//	             | U1 U2 U3 |
//	             | U4 U5 U6 |
//	             | U7 U8 U9 |
//	| L- L- L- | | F- F- F- | | R- R- R- | | B- B- B- |
//	             | D- D- D- |
//
// The solved cube is therefore
// "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB".
//
// # Quick start
//
// Scramble a cube and undo the scramble:
//
//	seq, state, err := cubekit.Generate(20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	undo, _ := cubekit.ReverseSequence(seq)
//	back, _ := cubekit.ApplySequence(state, undo)
//	fmt.Println(back == cubekit.Solved()) // true
//
// Apply moves from notation:
//
//	state, err := cubekit.ApplySequence(cubekit.Solved(), "R U R' U'")
//
// Validate a state before handing it to a solver:
//
//	report := cubekit.Validate(state)
//	if !report.OK {
//	    for _, v := range report.Violations {
//	        fmt.Println(v)
//	    }
//	}
//
// # Move notation
//
// Moves use standard cube notation: a face letter (U, D, R, L, F, B)
// optionally followed by ' (counter-clockwise) or 2 (half turn).
// Sequences are space-separated tokens, e.g. "R U2 B' D".
//
// All operations are pure: they return new state values and never mutate
// their input, so concurrent callers need no synchronization.
package cubekit
