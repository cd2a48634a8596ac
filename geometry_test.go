package cubekit

import "testing"

// The geometry tables are the single source of truth for both the move
// engine and the validator, so they get their own consistency checks.

func TestPieceTablesCoverAllFacelets(t *testing.T) {
	covered := make([]int, StateLen)
	for _, f := range Faces {
		covered[centerIndex[f]]++
	}
	for _, e := range edgePieces {
		covered[e[0]]++
		covered[e[1]]++
	}
	for _, c := range cornerPieces {
		covered[c[0]]++
		covered[c[1]]++
		covered[c[2]]++
	}
	for i, n := range covered {
		if n != 1 {
			t.Errorf("facelet %d covered %d times by centers+edges+corners, want 1", i, n)
		}
	}
}

func TestMoveCyclesAreDisjointPerFace(t *testing.T) {
	for _, face := range Faces {
		seen := make(map[int]bool)
		for _, cycle := range moveCycles[face] {
			for _, idx := range cycle {
				if idx < 0 || idx >= StateLen {
					t.Fatalf("%s cycle index %d out of range", face, idx)
				}
				if seen[idx] {
					t.Errorf("%s move touches facelet %d twice", face, idx)
				}
				seen[idx] = true
			}
		}
		if len(seen) != 20 {
			t.Errorf("%s move touches %d facelets, want 20 (8 on the face + 12 side)", face, len(seen))
		}
	}
}

func TestMoveCyclesNeverTouchCenters(t *testing.T) {
	for _, face := range Faces {
		for _, cycle := range moveCycles[face] {
			for _, idx := range cycle {
				for _, f := range Faces {
					if idx == centerIndex[f] {
						t.Errorf("%s move touches the %s center (facelet %d)", face, f, idx)
					}
				}
			}
		}
	}
}

func TestMovesPreserveLegality(t *testing.T) {
	// Any sequence of legal turns from solved must keep the state
	// structurally valid.
	s := Solved()
	for _, m := range AllMoves {
		var err error
		s, err = Apply(s, m)
		if err != nil {
			t.Fatal(err)
		}
		if report := Validate(s); !report.OK {
			t.Fatalf("state after %s is structurally invalid: %v", m, report.Violations)
		}
	}
}

func TestOppositeFacesAreInvolution(t *testing.T) {
	for _, f := range Faces {
		opp := oppositeFace[f]
		if opp == f {
			t.Errorf("%s cannot be its own opposite", f)
		}
		if oppositeFace[opp] != f {
			t.Errorf("opposite of opposite of %s should be %s", f, f)
		}
	}
}
