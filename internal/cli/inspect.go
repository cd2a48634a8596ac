package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/facelab/cubekit"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <state> <moves...>",
	Short: "Step through a move sequence interactively",
	Long: `Open an interactive view of a move sequence applied to a state.

Keyboard shortcuts:
  right/l/space  - apply the next move
  left/h         - undo the last move
  home/g         - jump back to the start
  end/G          - jump to the end
  q/Esc          - quit`,
	Args: cobra.MinimumNArgs(2),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// Styles
var (
	inspectTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205"))

	currentMoveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("82"))

	pendingMoveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	doneMoveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	inspectHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
)

// inspectModel walks a precomputed list of states: states[i] is the
// position after the first i moves, so stepping never re-applies moves.
type inspectModel struct {
	moves  []cubekit.Move
	states []cubekit.State
	pos    int
}

func newInspectModel(start cubekit.State, moves []cubekit.Move) (*inspectModel, error) {
	states := make([]cubekit.State, len(moves)+1)
	states[0] = start
	for i, m := range moves {
		next, err := cubekit.Apply(states[i], m)
		if err != nil {
			return nil, err
		}
		states[i+1] = next
	}
	return &inspectModel{moves: moves, states: states}, nil
}

func (m *inspectModel) Init() tea.Cmd {
	return nil
}

func (m *inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", " ":
			if m.pos < len(m.moves) {
				m.pos++
			}
		case "left", "h":
			if m.pos > 0 {
				m.pos--
			}
		case "home", "g":
			m.pos = 0
		case "end", "G":
			m.pos = len(m.moves)
		}
	}
	return m, nil
}

func (m *inspectModel) View() string {
	var b strings.Builder

	b.WriteString(inspectTitleStyle.Render("cubekit inspect"))
	fmt.Fprintf(&b, "  move %d/%d\n\n", m.pos, len(m.moves))

	b.WriteString(RenderNet(m.states[m.pos]))
	b.WriteByte('\n')

	parts := make([]string, len(m.moves))
	for i, mv := range m.moves {
		switch {
		case i < m.pos:
			parts[i] = doneMoveStyle.Render(mv.Notation())
		case i == m.pos:
			parts[i] = currentMoveStyle.Render(mv.Notation())
		default:
			parts[i] = pendingMoveStyle.Render(mv.Notation())
		}
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteByte('\n')

	if m.states[m.pos].IsSolved() {
		b.WriteString("\nSolved!\n")
	}

	b.WriteString(inspectHelpStyle.Render("\n←/→ step · g/G start/end · q quit\n"))
	return b.String()
}

func runInspect(cmd *cobra.Command, args []string) error {
	state, err := resolveState(args[0])
	if err != nil {
		return err
	}
	moves, err := cubekit.ParseSequence(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	model, err := newInspectModel(state, moves)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("inspector failed: %w", err)
	}
	return nil
}
