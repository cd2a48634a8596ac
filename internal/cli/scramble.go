package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
)

var (
	scrambleMoves int
	scrambleShow  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence and the state it produces.

No two consecutive moves turn the same axis, so scrambles never contain
trivially redundant pairs like R L or U U'.`,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 20, "Number of moves (1-100)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Render the scrambled cube")
	rootCmd.AddCommand(scrambleCmd)
}

func runScramble(cmd *cobra.Command, args []string) error {
	sequence, state, err := cubekit.Generate(scrambleMoves)
	if err != nil {
		return err
	}

	fmt.Printf("Scramble: %s\n", sequence)
	fmt.Printf("State:    %s\n", state)
	if scrambleShow {
		fmt.Println()
		fmt.Print(RenderNet(state))
	}
	return nil
}
