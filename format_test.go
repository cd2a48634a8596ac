package cubekit

import (
	"errors"
	"strings"
	"testing"
)

func TestToCanonical_AlreadyCanonical(t *testing.T) {
	in := string(Solved())
	if got := ToCanonical(in); got != Solved() {
		t.Errorf("ToCanonical(solved) = %s", got)
	}
}

func TestToCanonical_StripsWhitespaceAndCase(t *testing.T) {
	in := "uuu uuu uuu rrrrrrrrr fffffffff ddddddddd lllllllll bbbbbbbbb"
	if got := ToCanonical(in); got != Solved() {
		t.Errorf("ToCanonical(%q) = %s, want solved", in, got)
	}
}

func TestToCanonical_ColorNames(t *testing.T) {
	in := strings.Repeat("white", 9) + strings.Repeat("red", 9) +
		strings.Repeat("green", 9) + strings.Repeat("yellow", 9) +
		strings.Repeat("orange", 9) + strings.Repeat("blue", 9)
	if got := ToCanonical(in); got != Solved() {
		t.Errorf("ToCanonical(color names) = %s, want solved", got)
	}
}

func TestToCanonical_SingleLetterAliases(t *testing.T) {
	in := strings.Repeat("W", 9) + strings.Repeat("R", 9) +
		strings.Repeat("G", 9) + strings.Repeat("Y", 9) +
		strings.Repeat("O", 9) + strings.Repeat("B", 9)
	if got := ToCanonical(in); got != Solved() {
		t.Errorf("ToCanonical(letter aliases) = %s, want solved", got)
	}
}

func TestFromCanonical_Letters(t *testing.T) {
	got, err := FromCanonical(Solved(), FormatLetters)
	if err != nil {
		t.Fatal(err)
	}
	if got != string(Solved()) {
		t.Errorf("letters format should be the identity, got %s", got)
	}
}

func TestFromCanonical_Numbers(t *testing.T) {
	got, err := FromCanonical(Solved(), FormatNumbers)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Repeat("1", 9) + strings.Repeat("3", 9) + strings.Repeat("5", 9) +
		strings.Repeat("2", 9) + strings.Repeat("4", 9) + strings.Repeat("6", 9)
	if got != want {
		t.Errorf("numbers format = %s, want %s", got, want)
	}
}

func TestFromCanonical_Colors(t *testing.T) {
	got, err := FromCanonical(Solved(), FormatColors)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, strings.Repeat("White", 9)) {
		t.Errorf("colors format should start with nine White, got %s", got[:50])
	}
	if !strings.HasSuffix(got, strings.Repeat("Blue", 9)) {
		t.Error("colors format should end with nine Blue")
	}
}

func TestFromCanonical_Errors(t *testing.T) {
	_, err := FromCanonical(Solved(), "emoji")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	_, err = FromCanonical(State("UDU"), FormatColors)
	if !errors.Is(err, ErrMalformedState) {
		t.Errorf("expected ErrMalformedState, got %v", err)
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	// For input already expressible in the canonical alphabet,
	// from(to(x), letters) == to(x).
	inputs := []string{
		string(Solved()),
		"uufuufuuf rrrrrrrrr ffdffdffd ddbddbddb lllllllll ubbubbubb",
	}
	for _, in := range inputs {
		canonical := ToCanonical(in)
		out, err := FromCanonical(canonical, FormatLetters)
		if err != nil {
			t.Fatalf("FromCanonical(%s): %v", canonical, err)
		}
		if State(out) != canonical {
			t.Errorf("round trip changed %s to %s", canonical, out)
		}
	}
}
