package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
)

var (
	okStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	violationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var validateCmd = &cobra.Command{
	Use:   "validate <state>",
	Short: "Check that a state is structurally possible",
	Long: `Check that a cube state could physically come from a real cube:
54 facelets, nine of each color, fixed centers, and every edge and
corner piece present exactly once with a possible color combination.

All violations are reported, not just the first one. Reachability by
legal turns (permutation and orientation parity) is not checked.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	state, err := resolveState(args[0])
	if err != nil {
		return err
	}

	report := cubekit.Validate(state)
	if report.OK {
		fmt.Println(okStyle.Render("OK") + " state is structurally valid")
		return nil
	}

	fmt.Printf("%d violation(s):\n", len(report.Violations))
	for _, v := range report.Violations {
		fmt.Printf("  %s %s\n", violationStyle.Render("✗"), v.Message)
	}
	return report.Error()
}
