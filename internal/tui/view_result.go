package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	// Show what was asked
	req := a.state.lastRequest
	asked := styleSubtitle.Render(fmt.Sprintf("%s > %s", req.Category, truncate(strings.TrimSpace(req.Query), 60)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	heading := styleHeading.Render("Results")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, heading))
	b.WriteString("\n")

	// Result box
	resultBox := styleBox.Copy().
		Width(min(76, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.resultVP.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	// Status bar
	var parts []string
	if !a.state.resultVP.AtTop() || !a.state.resultVP.AtBottom() {
		parts = append(parts, fmt.Sprintf("%3.f%%", a.state.resultVP.ScrollPercent()*100))
	}
	parts = append(parts,
		formatTokens(a.state.result),
		fmt.Sprintf("%.1fs", a.state.elapsed.Seconds()),
		"[j/k] Scroll  [n] New search  [Esc] Back",
	)
	status := styleStatusBar.Render(strings.Join(parts, "  "))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))
	b.WriteString("\n\n")
	b.WriteString(a.renderFooter())

	return a.centerVertically(b.String())
}
