package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Loading messages rotated while the request is in flight
var loadingMessages = []string{
	"Searching...",
	"Asking Gemini...",
	"Looking around...",
	"Gathering results...",
}

func (a *App) renderSearching() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())

	req := a.state.lastRequest
	info := styleSubtitle.Render(fmt.Sprintf("%s > %s", req.Category, truncate(strings.TrimSpace(req.Query), 55)))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, info))
	b.WriteString("\n\n")

	elapsed := time.Since(a.state.searchStart)
	msgIdx := int(elapsed.Seconds()/2) % len(loadingMessages)
	line := a.state.spinner.View() + " " +
		lipgloss.NewStyle().Foreground(colorPrimary).Render(loadingMessages[msgIdx])

	box := styleBox.Copy().
		Width(min(60, a.width-4)).
		BorderForeground(colorSecondary).
		Render(line)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	var status string
	if timeout := a.service.Timeout(); timeout > 0 {
		status = fmt.Sprintf("%.1fs / %s  [Esc] Cancel", elapsed.Seconds(), timeout)
	} else {
		status = fmt.Sprintf("%.1fs  [Esc] Cancel", elapsed.Seconds())
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return a.centerVertically(b.String())
}
