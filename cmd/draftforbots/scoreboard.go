package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/game"
)

var (
	// Style definitions
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	ageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	turnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winnerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	violationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	totalStyle = lipgloss.NewStyle().
			Bold(true)
)

// renderScoreboard prints the final standings, best first, with a column
// per victory category.
func renderScoreboard(out io.Writer, res game.Result) {
	fmt.Fprintf(out, "\n%s\n", headerStyle.Render("final scores"))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s", headerStyle.Render("player"), headerStyle.Render("company"))
	for _, category := range draft.Categories {
		fmt.Fprintf(w, "\t%s", headerStyle.Render(strings.ToLower(category.String())))
	}
	fmt.Fprintf(w, "\t%s\n", headerStyle.Render("total"))

	for rank, id := range res.Ranking {
		name := string(id)
		if rank == 0 {
			name = winnerStyle.Render(name)
		}
		fmt.Fprintf(w, "%s\t%s", name, res.Profiles[id])
		for _, category := range draft.Categories {
			fmt.Fprintf(w, "\t%d", res.Scores[id][category])
		}
		fmt.Fprintf(w, "\t%s\n", totalStyle.Render(strconv.Itoa(res.Scores.Total(id))))
	}

	w.Flush()
}

// formatResources renders a resource multiset as "2 Steel, 1 Software".
func formatResources(rs draft.Resources) string {
	var parts []string
	for _, r := range draft.RawResources {
		if n := rs.Count(r); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, r))
		}
	}
	for _, r := range draft.RefinedResources {
		if n := rs.Count(r); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, r))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}
