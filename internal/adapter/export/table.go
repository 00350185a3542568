package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"classroom/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	groupBox    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)
)

// RenderEmpty renders the message for a run that produced nothing.
func RenderEmpty(outcome domain.Outcome) string {
	return mutedStyle.Render(outcome.Message)
}

// RenderNames renders a numbered cold-call list.
func RenderNames(names []string) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Selected %d", len(names))))
	for i, n := range names {
		b.WriteString(fmt.Sprintf("\n%s %s", mutedStyle.Render(fmt.Sprintf("%2d.", i+1)), nameStyle.Render(n)))
	}
	return b.String()
}

// RenderGroups renders each group as a bordered box, laid out side by side
// up to perRow boxes per line.
func RenderGroups(groups []domain.Group, perRow int) string {
	if perRow < 1 {
		perRow = 4
	}

	boxes := make([]string, len(groups))
	for i, g := range groups {
		lines := append([]string{headerStyle.Render(fmt.Sprintf("Group %d", i+1))}, g...)
		boxes[i] = groupBox.Render(strings.Join(lines, "\n"))
	}

	var rows []string
	for start := 0; start < len(boxes); start += perRow {
		end := min(start+perRow, len(boxes))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RenderPairs renders one "reviewer reviews reviewee" line per pair.
func RenderPairs(pairs []domain.Pair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Reviewer))
	}

	lines := make([]string, len(pairs))
	for i, p := range pairs {
		reviewer := nameStyle.Width(width).Render(p.Reviewer)
		lines[i] = fmt.Sprintf("%s %s %s", reviewer, mutedStyle.Render("reviews"), p.Reviewee)
	}
	return strings.Join(lines, "\n")
}
