package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	// Title
	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	categories := []string{
		"  Tool Finder      Tools for a task, with features",
		"  Business Finder  Businesses, locations, contacts",
		"  Service Finder   Service providers and access",
	}

	categoriesBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(categories, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, categoriesBox))
	b.WriteString("\n\n")

	// Keyboard shortcuts
	shortcuts := []string{
		"  Tab / Shift+Tab  Move between fields",
		"  Left / Right     Change category",
		"  Enter, Ctrl+S    Search",
		"  Alt+Enter        New line in query",
		"  Esc              Back / cancel search / quit",
		"  ?  s             Help, settings (category row)",
		"  Ctrl+C           Quit",
	}

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcutsBox := styleBox.Copy().
		Width(56).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
