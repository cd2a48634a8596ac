package cubekit

import "strings"

// colorAliases maps textual color spellings to canonical face letters.
// Full names come before single letters so that e.g. WHITE is consumed
// whole rather than leaving HITE behind after a W substitution.
var colorAliases = []struct {
	alias  string
	letter string
}{
	{"WHITE", "U"},
	{"YELLOW", "D"},
	{"ORANGE", "L"},
	{"GREEN", "F"},
	{"BLUE", "B"},
	{"RED", "R"},
	{"W", "U"},
	{"Y", "D"},
	{"O", "L"},
	{"G", "F"},
}

// Output formats accepted by FromCanonical.
const (
	FormatColors  = "colors"  // Full color names: White, Yellow, ...
	FormatNumbers = "numbers" // Digits 1-6 in face order
	FormatLetters = "letters" // Canonical letters, unchanged
)

var colorNames = map[byte]string{
	'U': "White", 'D': "Yellow", 'R': "Red", 'L': "Orange", 'F': "Green", 'B': "Blue",
}

var colorNumbers = map[byte]string{
	'U': "1", 'D': "2", 'R': "3", 'L': "4", 'F': "5", 'B': "6",
}

// ToCanonical normalizes a textual cube representation to the canonical
// 54-letter alphabet: whitespace is stripped, input is upper-cased, and
// unless the result is already 54 canonical symbols, known color names
// and single-letter color aliases are substituted. No length or count
// validation happens here; callers validate separately.
func ToCanonical(input string) State {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(input), ""))
	if isCanonical(cleaned) {
		return State(cleaned)
	}
	for _, a := range colorAliases {
		cleaned = strings.ReplaceAll(cleaned, a.alias, a.letter)
	}
	return State(cleaned)
}

// isCanonical reports whether s is 54 symbols all drawn from UDRLFB.
func isCanonical(s string) bool {
	if len(s) != StateLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := colorNames[s[i]]; !ok {
			return false
		}
	}
	return true
}

// FromCanonical renders a canonical state in a display format: full
// color names ("colors"), digits ("numbers"), or the canonical letters
// themselves ("letters"). Symbols outside the canonical alphabet pass
// through unchanged, matching ToCanonical's best-effort stance.
func FromCanonical(s State, format string) (string, error) {
	if err := s.checkLen(); err != nil {
		return "", err
	}

	var table map[byte]string
	switch format {
	case FormatColors:
		table = colorNames
	case FormatNumbers:
		table = colorNumbers
	case FormatLetters:
		return string(s), nil
	default:
		return "", &UnknownFormatError{Format: format}
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if mapped, ok := table[s[i]]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
