package cubekit

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestGenerate_LengthAndAxisConstraint(t *testing.T) {
	for n := 1; n <= 100; n++ {
		seq, state, err := Generate(n)
		if err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
		tokens := strings.Fields(seq)
		if len(tokens) != n {
			t.Fatalf("Generate(%d) produced %d tokens", n, len(tokens))
		}
		var prev Face
		for _, tok := range tokens {
			m, err := ParseMove(tok)
			if err != nil {
				t.Fatalf("Generate(%d) produced bad token %q: %v", n, tok, err)
			}
			if m.Face == prev {
				t.Errorf("consecutive moves on face %s in %q", m.Face, seq)
			}
			if m.Face == oppositeFace[prev] {
				t.Errorf("consecutive moves on the %s/%s axis in %q", prev, m.Face, seq)
			}
			prev = m.Face
		}
		want, err := ApplySequence(Solved(), seq)
		if err != nil {
			t.Fatal(err)
		}
		if state != want {
			t.Errorf("Generate(%d) state does not match its own sequence", n)
		}
	}
}

func TestGenerate_RangeErrors(t *testing.T) {
	for _, n := range []int{0, -1, 101, 1000} {
		_, _, err := Generate(n)
		if err == nil {
			t.Fatalf("Generate(%d) should fail", n)
		}
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("Generate(%d): expected RangeError, got %T", n, err)
		}
		if rangeErr.Value != n {
			t.Errorf("RangeError.Value = %d, want %d", rangeErr.Value, n)
		}
	}
}

func TestGenerateWithRand_Deterministic(t *testing.T) {
	a, stateA, err := GenerateWithRand(rand.New(rand.NewSource(42)), 25)
	if err != nil {
		t.Fatal(err)
	}
	b, stateB, err := GenerateWithRand(rand.New(rand.NewSource(42)), 25)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || stateA != stateB {
		t.Error("same seed should produce the same scramble")
	}
}

func TestGenerate_StateIsValid(t *testing.T) {
	_, state, err := Generate(50)
	if err != nil {
		t.Fatal(err)
	}
	if report := Validate(state); !report.OK {
		t.Errorf("scrambled state should validate, got %v", report.Violations)
	}
}
