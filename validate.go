package cubekit

import (
	"fmt"
	"sort"
	"strings"
)

// ViolationKind classifies a structural violation.
type ViolationKind string

const (
	ViolationLength ViolationKind = "length"
	ViolationSymbol ViolationKind = "symbol"
	ViolationCount  ViolationKind = "count"
	ViolationCenter ViolationKind = "center"
	ViolationEdge   ViolationKind = "edge"
	ViolationCorner ViolationKind = "corner"
)

// Violation is one structural problem found in a state.
type Violation struct {
	Kind    ViolationKind
	Message string
}

func (v Violation) String() string { return v.Message }

// Report is the outcome of Validate: an overall verdict plus every
// violation found. Validation never stops at the first problem, so a
// caller can present the complete diagnosis in one pass.
type Report struct {
	OK         bool
	Violations []Violation
}

// Error converts a failed report into a single error value, or nil for a
// passing report.
func (r Report) Error() error {
	if r.OK {
		return nil
	}
	msgs := make([]string, len(r.Violations))
	for i, v := range r.Violations {
		msgs[i] = v.Message
	}
	return fmt.Errorf("cubekit: invalid cube state: %s", strings.Join(msgs, "; "))
}

// legalEdgeKeys and legalCornerKeys hold the canonical (sorted-letter)
// keys of every physically possible edge and corner piece, derived from
// the opposite-face map: an edge is any two distinct non-opposite faces,
// a corner is three pairwise distinct, pairwise non-opposite faces (one
// per axis).
var (
	legalEdgeKeys   = buildLegalEdgeKeys()
	legalCornerKeys = buildLegalCornerKeys()
)

func buildLegalEdgeKeys() map[string]bool {
	keys := make(map[string]bool, 12)
	for i, a := range Faces {
		for _, b := range Faces[i+1:] {
			if oppositeFace[a] == b {
				continue
			}
			keys[pieceKey(string(a)+string(b))] = true
		}
	}
	return keys
}

func buildLegalCornerKeys() map[string]bool {
	keys := make(map[string]bool, 8)
	for _, a := range []Face{FaceU, FaceD} {
		for _, b := range []Face{FaceF, FaceB} {
			for _, c := range []Face{FaceR, FaceL} {
				keys[pieceKey(string(a)+string(b)+string(c))] = true
			}
		}
	}
	return keys
}

// pieceKey canonicalizes a piece's letters by sorting them, so that the
// same physical piece compares equal regardless of orientation.
func pieceKey(letters string) string {
	b := []byte(letters)
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// Validate checks that a state is a structurally possible cube
// configuration: 54 symbols from the canonical alphabet, nine of each,
// centers fixed, and every edge and corner piece present exactly once
// with a physically possible color combination.
//
// Permutation and orientation parity (whether the arrangement is
// reachable by legal turns) is not checked, so Validate accepts a
// superset of truly reachable states.
func Validate(s State) Report {
	var violations []Violation

	// Length gates everything: index arithmetic below is meaningless on
	// a wrong-sized state.
	if len(s) != StateLen {
		violations = append(violations, Violation{
			Kind:    ViolationLength,
			Message: fmt.Sprintf("state must be exactly 54 facelets, got %d", len(s)),
		})
		return Report{OK: false, Violations: violations}
	}

	violations = append(violations, checkSymbols(s)...)
	violations = append(violations, checkCounts(s)...)
	violations = append(violations, checkCenters(s)...)
	violations = append(violations, checkEdges(s)...)
	violations = append(violations, checkCorners(s)...)

	return Report{OK: len(violations) == 0, Violations: violations}
}

func checkSymbols(s State) []Violation {
	seen := make(map[byte]bool)
	var bad []string
	for i := 0; i < len(s); i++ {
		c := s[i]
		if _, ok := colorNames[c]; !ok && !seen[c] {
			seen[c] = true
			bad = append(bad, string(c))
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return []Violation{{
		Kind:    ViolationSymbol,
		Message: fmt.Sprintf("invalid symbols %s: only U, D, R, L, F, B are allowed", strings.Join(bad, ", ")),
	}}
}

func checkCounts(s State) []Violation {
	counts := make(map[Face]int, 6)
	for i := 0; i < len(s); i++ {
		counts[Face(s[i])]++
	}
	var violations []Violation
	for _, f := range Faces {
		if n := counts[f]; n != 9 {
			violations = append(violations, Violation{
				Kind:    ViolationCount,
				Message: fmt.Sprintf("color %s (%s) appears %d times, want 9", f, colorNames[f[0]], n),
			})
		}
	}
	return violations
}

func checkCenters(s State) []Violation {
	var violations []Violation
	for _, f := range Faces {
		if got := Face(s[centerIndex[f]]); got != f {
			violations = append(violations, Violation{
				Kind:    ViolationCenter,
				Message: fmt.Sprintf("center of face %s holds %s, want %s", f, got, f),
			})
		}
	}
	return violations
}

func checkEdges(s State) []Violation {
	var violations []Violation
	seen := make(map[string]int, 12)
	illegal := false
	for _, e := range edgePieces {
		letters := string(s[e[0]]) + string(s[e[1]])
		key := pieceKey(letters)
		if !legalEdgeKeys[key] {
			illegal = true
			violations = append(violations, Violation{
				Kind:    ViolationEdge,
				Message: fmt.Sprintf("edge at facelets %d,%d has impossible colors %s", e[0], e[1], letters),
			})
			continue
		}
		seen[key]++
	}
	for _, key := range sortedKeys(legalEdgeKeys) {
		switch n := seen[key]; {
		case n > 1:
			violations = append(violations, Violation{
				Kind:    ViolationEdge,
				Message: fmt.Sprintf("edge piece %s appears %d times, want once", key, n),
			})
		case n == 0 && !illegal:
			// Missing pieces are only meaningful when every slot held a
			// legal combination; otherwise the impossible-color report
			// above already explains the gap.
			violations = append(violations, Violation{
				Kind:    ViolationEdge,
				Message: fmt.Sprintf("edge piece %s is missing", key),
			})
		}
	}
	return violations
}

func checkCorners(s State) []Violation {
	var violations []Violation
	seen := make(map[string]int, 8)
	illegal := false
	for _, c := range cornerPieces {
		letters := string(s[c[0]]) + string(s[c[1]]) + string(s[c[2]])
		key := pieceKey(letters)
		if !legalCornerKeys[key] {
			illegal = true
			violations = append(violations, Violation{
				Kind:    ViolationCorner,
				Message: fmt.Sprintf("corner at facelets %d,%d,%d has impossible colors %s", c[0], c[1], c[2], letters),
			})
			continue
		}
		seen[key]++
	}
	for _, key := range sortedKeys(legalCornerKeys) {
		switch n := seen[key]; {
		case n > 1:
			violations = append(violations, Violation{
				Kind:    ViolationCorner,
				Message: fmt.Sprintf("corner piece %s appears %d times, want once", key, n),
			})
		case n == 0 && !illegal:
			violations = append(violations, Violation{
				Kind:    ViolationCorner,
				Message: fmt.Sprintf("corner piece %s is missing", key),
			})
		}
	}
	return violations
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
