package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
	"github.com/facelab/cubekit/internal/config"
	"github.com/facelab/cubekit/internal/solver"
	"github.com/facelab/cubekit/internal/storage"
)

var (
	solverCommand string
	solveNoStore  bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <state>",
	Short: "Solve a cube state through the external solver",
	Long: `Validate a cube state, hand it to the configured external solver, and
record the solution in the history database.

The solver command comes from --solver or CUBEKIT_SOLVER_CMD; it is run
with the canonical 54-letter state as its argument and must print a move
sequence on stdout. CUBEKIT_SOLVER_TIMEOUT (seconds) bounds the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solverCommand, "solver", "", "External solver command (default: $CUBEKIT_SOLVER_CMD)")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Do not record the solution in the history")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	state, err := resolveState(args[0])
	if err != nil {
		return err
	}

	if report := cubekit.Validate(state); !report.OK {
		for _, v := range report.Violations {
			fmt.Printf("  %s %s\n", violationStyle.Render("✗"), v.Message)
		}
		return report.Error()
	}

	cfg := config.Load()
	command := solverCommand
	if command == "" {
		command = cfg.SolverCommand
	}
	oracle := solver.NewCommand(command)

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.SolverTimeout)
	defer cancel()

	start := time.Now()
	solution, err := oracle.Solve(ctx, state)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solving failed after %s: %w", elapsed.Round(time.Millisecond), err)
	}

	moveCount := cubekit.SequenceLength(solution)
	if solution == "" {
		fmt.Println("The cube is already solved.")
	} else {
		fmt.Printf("Solution:  %s\n", solution)
	}
	fmt.Printf("Moves:     %d\n", moveCount)
	fmt.Printf("Time:      %s\n", elapsed.Round(time.Millisecond))

	if solveNoStore {
		return nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolutionRepository(db)
	id, err := repo.Append(string(state), solution, moveCount, elapsed)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded:  %s\n", id)
	return nil
}
