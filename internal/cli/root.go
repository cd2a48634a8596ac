// Package cli implements the command-line interface for cubekit.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
	"github.com/facelab/cubekit/internal/config"
	"github.com/facelab/cubekit/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath string
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubekit",
	Short: "Rubik's cube state toolkit",
	Long: `cubekit - a facelet-level toolkit for the 3x3x3 Rubik's cube.

Scramble, apply move sequences, validate cube states, solve them through
an external solver, and keep a history of solutions.

States are 54-letter strings over U, D, R, L, F, B in face order
Up, Right, Front, Down, Left, Back. Color names and W/Y/O/G aliases are
accepted anywhere a state is expected, and "solved" names the solved
cube.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: ~/.cubekit/cubekit.db)")
}

// openDB opens the history database from flag, environment, or default.
func openDB(cfg config.Config) (*storage.DB, error) {
	path := dbPath
	if path == "" {
		path = cfg.DBPath
	}
	if path == "" {
		return storage.OpenDefault()
	}
	return storage.Open(path)
}

// resolveState turns a command-line argument into a canonical state.
// "solved" (any case) names the solved cube; anything else goes through
// the format converter and the structural length check.
func resolveState(arg string) (cubekit.State, error) {
	switch arg {
	case "solved", "SOLVED", "Solved":
		return cubekit.Solved(), nil
	}
	state := cubekit.ToCanonical(arg)
	if len(state) != cubekit.StateLen {
		return "", &cubekit.MalformedStateError{Length: len(state)}
	}
	return state, nil
}
