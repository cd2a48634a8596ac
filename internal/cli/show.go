package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show <state>",
	Short: "Render a cube state",
	Long: `Render a cube state as an unfolded net, plus the state text in the
chosen format: letters (canonical), colors (full color names), or
numbers (digits 1-6).`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", cubekit.FormatLetters, "Output format: letters, colors, or numbers")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	state, err := resolveState(args[0])
	if err != nil {
		return err
	}

	text, err := cubekit.FromCanonical(state, showFormat)
	if err != nil {
		return err
	}

	fmt.Print(RenderNet(state))
	fmt.Println()
	fmt.Println(text)
	return nil
}
