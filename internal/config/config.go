// Package config loads cubekit settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDB            = "CUBEKIT_DB"             // history database path
	EnvSolverCmd     = "CUBEKIT_SOLVER_CMD"     // external solver command
	EnvSolverTimeout = "CUBEKIT_SOLVER_TIMEOUT" // solver timeout in seconds
)

// DefaultSolverTimeout bounds an external solver run when no override is
// configured.
const DefaultSolverTimeout = 30 * time.Second

// Config carries the settings shared by the CLI commands.
type Config struct {
	DBPath        string
	SolverCommand string
	SolverTimeout time.Duration
}

// Load reads configuration from a .env file (if present) and the process
// environment. Unset values stay at their zero value except the solver
// timeout, which defaults to 30 seconds; command-line flags override
// whatever Load returns.
func Load() Config {
	_ = godotenv.Load() // .env is optional

	cfg := Config{
		DBPath:        os.Getenv(EnvDB),
		SolverCommand: os.Getenv(EnvSolverCmd),
		SolverTimeout: DefaultSolverTimeout,
	}
	if v := os.Getenv(EnvSolverTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.SolverTimeout = time.Duration(secs) * time.Second
		}
	}
	return cfg
}
