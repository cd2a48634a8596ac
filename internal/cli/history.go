package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/facelab/cubekit/internal/config"
	"github.com/facelab/cubekit/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded solutions",
	Long:  `List the most recent recorded solutions, newest first.`,
	RunE:  runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded solutions",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 10, "Maximum number of records to show")
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	repo := storage.NewSolutionRepository(db)
	solutions, err := repo.Recent(historyLimit)
	if err != nil {
		return err
	}
	total, err := repo.Count()
	if err != nil {
		return err
	}

	if len(solutions) == 0 {
		fmt.Println("No recorded solutions.")
		return nil
	}

	fmt.Printf("Showing %d of %d solution(s):\n\n", len(solutions), total)
	for _, s := range solutions {
		fmt.Printf("%s  %s\n", s.CreatedAt.Local().Format(time.DateTime), s.SolutionID)
		fmt.Printf("  State:    %s\n", s.OriginalState)
		if s.Solution == "" {
			fmt.Printf("  Solution: (already solved)\n")
		} else {
			fmt.Printf("  Solution: %s\n", s.Solution)
		}
		fmt.Printf("  Moves:    %d   Time: %dms\n\n", s.MoveCount, s.ExecutionTimeMs)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	n, err := storage.NewSolutionRepository(db).Clear()
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d solution(s).\n", n)
	return nil
}
