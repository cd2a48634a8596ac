package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
)

var applyShow bool

var applyCmd = &cobra.Command{
	Use:   "apply <state> <moves...>",
	Short: "Apply a move sequence to a state",
	Long: `Apply a move sequence to a cube state and print the result.

The state may be a 54-letter canonical string, a color-name string, or
the keyword "solved". Moves use standard notation: U, U', U2, ...

Example:
  cubekit apply solved "R U R' U'"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyShow, "show", false, "Render the resulting cube")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	state, err := resolveState(args[0])
	if err != nil {
		return err
	}

	sequence := strings.Join(args[1:], " ")
	result, err := cubekit.ApplySequence(state, sequence)
	if err != nil {
		return err
	}

	fmt.Printf("State: %s\n", result)
	if result.IsSolved() {
		fmt.Println("The cube is solved.")
	}
	if applyShow {
		fmt.Println()
		fmt.Print(RenderNet(result))
	}
	return nil
}
