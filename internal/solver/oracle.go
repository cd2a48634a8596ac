// Package solver defines the boundary to the external solving engine.
// cubekit does not search for solutions itself: a configured external
// command is treated as an oracle that either returns a move sequence
// restoring the solved state, or fails as unsolvable or timed out.
package solver

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/facelab/cubekit"
)

// Failure classifications for an oracle run.
var (
	ErrUnsolvable = errors.New("solver: state is unsolvable")
	ErrTimeout    = errors.New("solver: timed out")
	ErrNoSolver   = errors.New("solver: no solver command configured")
)

// Oracle produces a solution sequence for a canonical 54-facelet state.
type Oracle interface {
	Solve(ctx context.Context, state cubekit.State) (string, error)
}

// Command invokes an external solver binary. The state is passed as the
// single argument and the solution sequence is read from stdout.
type Command struct {
	// Path is the solver executable, e.g. a kociemba wrapper script.
	Path string
	// Args are prepended before the state argument.
	Args []string
}

// NewCommand returns a Command oracle for the given command line.
func NewCommand(path string, args ...string) *Command {
	return &Command{Path: path, Args: args}
}

// Solve runs the external solver under the caller's context. An already
// solved state short-circuits to the empty sequence without spawning a
// process. Solutions come back through cubekit.OptimizeSequence so
// redundant same-face runs from the engine are folded away.
func (c *Command) Solve(ctx context.Context, state cubekit.State) (string, error) {
	if c == nil || c.Path == "" {
		return "", ErrNoSolver
	}
	if err := state.CheckSymbols(); err != nil {
		return "", err
	}
	if state.IsSolved() {
		return "", nil
	}

	args := append(append([]string{}, c.Args...), string(state))
	cmd := exec.CommandContext(ctx, c.Path, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", classify(ctx, err, string(out))
	}

	solution := strings.TrimSpace(string(out))
	if !cubekit.IsValidSequence(solution) {
		return "", fmt.Errorf("solver: %s returned malformed sequence %q", c.Path, solution)
	}
	optimized, err := cubekit.OptimizeSequence(solution)
	if err != nil {
		return "", fmt.Errorf("solver: optimizing solution: %w", err)
	}
	return optimized, nil
}

// classify maps a failed solver run onto the oracle error taxonomy.
func classify(ctx context.Context, err error, output string) error {
	if ctx.Err() == context.DeadlineExceeded {
		return ErrTimeout
	}
	lower := strings.ToLower(output + " " + err.Error())
	switch {
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "timed out"):
		return ErrTimeout
	case strings.Contains(lower, "unsolvable") || strings.Contains(lower, "invalid"):
		return fmt.Errorf("%w: %s", ErrUnsolvable, strings.TrimSpace(output))
	default:
		return fmt.Errorf("solver: %w: %s", err, strings.TrimSpace(output))
	}
}
