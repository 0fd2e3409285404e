package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tburke/sociograph/pkg/analytics"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginTop(1)

	statsBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			Padding(0, 2)

	tableTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// RenderSummary renders the run overview box.
func RenderSummary(s *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Nodes:          %d\n", s.Nodes)
	fmt.Fprintf(&b, "Edges:          %d\n", s.Edges)
	fmt.Fprintf(&b, "Components:     %d\n", s.Components)
	fmt.Fprintf(&b, "Density:        %.4f\n", s.Density)
	fmt.Fprintf(&b, "Average degree: %.4f", s.AverageDegree)

	if s.AveragePathLength != nil {
		fmt.Fprintf(&b, "\nAvg path len:   %.4f", *s.AveragePathLength)
	}
	if s.Diameter != nil {
		fmt.Fprintf(&b, "\nDiameter:       %d", *s.Diameter)
	}
	if s.Communities != nil {
		fmt.Fprintf(&b, "\nCommunities:    %d", *s.Communities)
	}
	if s.Modularity != nil {
		fmt.Fprintf(&b, "\nModularity:     %.4f", *s.Modularity)
	}

	header := titleStyle.Render("Graph Analysis Report")
	meta := mutedStyle.Render(fmt.Sprintf("run %s  %s", s.RunID, s.GeneratedAt.Format("2006-01-02 15:04:05")))

	return header + "\n" + meta + "\n" + statsBoxStyle.Render(b.String()) + "\n"
}

// RenderTable renders one ranked score listing.
func RenderTable(t ScoreTable) string {
	var b strings.Builder

	b.WriteString(tableTitleStyle.Render(t.Title))
	b.WriteString("\n")
	if len(t.Rows) == 0 {
		b.WriteString(mutedStyle.Render("  (no nodes)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, row := range t.Rows {
		fmt.Fprintf(&b, "  %2d. node %-12d %.6f\n", i+1, row.NodeID, row.Score)
	}
	return b.String()
}

// RenderCommunities renders the community breakdown, largest first.
func RenderCommunities(p *analytics.PartitionResult) string {
	var b strings.Builder

	b.WriteString(tableTitleStyle.Render("Communities"))
	fmt.Fprintf(&b, "\n  %d communities, modularity %.4f\n", len(p.Communities), p.Modularity)

	for _, c := range p.Communities {
		preview := c.Nodes
		truncated := false
		if len(preview) > 8 {
			preview = preview[:8]
			truncated = true
		}
		parts := make([]string, len(preview))
		for i, u := range preview {
			parts[i] = fmt.Sprintf("%d", u)
		}
		line := fmt.Sprintf("  community %d (%d nodes): %s", c.ID, c.Size, strings.Join(parts, ", "))
		if truncated {
			line += ", ..."
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Render assembles the full report.
func Render(s *Summary, tables []ScoreTable, partition *analytics.PartitionResult) string {
	var b strings.Builder

	b.WriteString(RenderSummary(s))
	for _, t := range tables {
		b.WriteString("\n")
		b.WriteString(RenderTable(t))
	}
	if partition != nil {
		b.WriteString("\n")
		b.WriteString(RenderCommunities(partition))
	}
	return b.String()
}
