package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/facelab/cubekit"
)

// faceletStyles colors each canonical letter like the sticker it stands
// for: U white, D yellow, R red, L orange, F green, B blue.
var faceletStyles = map[byte]lipgloss.Style{
	'U': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
	'D': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	'R': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	'L': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
	'F': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40")),
	'B': lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
}

var unknownFaceletStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241"))

// styledFacelet renders one facelet letter in its sticker color.
func styledFacelet(c byte) string {
	if style, ok := faceletStyles[c]; ok {
		return style.Render(string(c))
	}
	return unknownFaceletStyle.Render(string(c))
}

// renderRow renders one row of a 9-facelet face, separated by spaces.
func renderRow(face string, row int) string {
	parts := make([]string, 3)
	for i := 0; i < 3; i++ {
		parts[i] = styledFacelet(face[row*3+i])
	}
	return strings.Join(parts, " ")
}

// RenderNet draws the unfolded cube:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	L L L F F F R R R B B B
//	      D D D
//	      D D D
//	      D D D
func RenderNet(s cubekit.State) string {
	if len(s) != cubekit.StateLen {
		return ""
	}

	const indent = "      "
	up := s.Face(cubekit.FaceU)
	left := s.Face(cubekit.FaceL)
	front := s.Face(cubekit.FaceF)
	right := s.Face(cubekit.FaceR)
	back := s.Face(cubekit.FaceB)
	down := s.Face(cubekit.FaceD)

	var b strings.Builder
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderRow(up, row))
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(renderRow(left, row))
		b.WriteByte(' ')
		b.WriteString(renderRow(front, row))
		b.WriteByte(' ')
		b.WriteString(renderRow(right, row))
		b.WriteByte(' ')
		b.WriteString(renderRow(back, row))
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		b.WriteString(renderRow(down, row))
		b.WriteByte('\n')
	}
	return b.String()
}
