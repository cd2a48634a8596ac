package cubekit

import (
	"errors"
	"strings"
	"testing"
)

func TestFaceExtraction(t *testing.T) {
	for _, f := range Faces {
		got := Solved().Face(f)
		want := strings.Repeat(string(f), 9)
		if got != want {
			t.Errorf("Face(%s) = %q, want %q", f, got, want)
		}
	}
}

func TestFaceAfterMove(t *testing.T) {
	state, err := Apply(Solved(), R)
	if err != nil {
		t.Fatal(err)
	}
	if got := state.Face(FaceR); got != "RRRRRRRRR" {
		t.Errorf("R face after R = %q, want all R", got)
	}
	if got := state.Face(FaceU); got != "UUFUUFUUF" {
		t.Errorf("U face after R = %q, want %q", got, "UUFUUFUUF")
	}
}

func TestFaceWrongLength(t *testing.T) {
	if got := State("UUU").Face(FaceU); got != "" {
		t.Errorf("Face on short state = %q, want empty", got)
	}
}

func TestCheckSymbols(t *testing.T) {
	if err := Solved().CheckSymbols(); err != nil {
		t.Fatalf("solved state should pass: %v", err)
	}

	short := State("UUU")
	if err := short.CheckSymbols(); !errors.Is(err, ErrMalformedState) {
		t.Errorf("short state: expected ErrMalformedState, got %v", err)
	}

	bad := State(string(Solved())[:30] + "x" + string(Solved())[31:])
	err := bad.CheckSymbols()
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	var symErr *UnknownSymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("expected UnknownSymbolError, got %T", err)
	}
	if symErr.Symbol != 'x' || symErr.Index != 30 {
		t.Errorf("got symbol %q at %d, want 'x' at 30", symErr.Symbol, symErr.Index)
	}
}
