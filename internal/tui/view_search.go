package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/finder/internal/prompts"
)

const (
	title   = "Tool, Business, and Service Finder"
	tagline = "Select a category, enter your query, and get detailed results powered by AI."
	footer  = "Powered by Google Gemini API"
)

func (a *App) renderHeader() string {
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleLogo.Render(title)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render(tagline)))
	b.WriteString("\n\n")
	return b.String()
}

func (a *App) renderFooter() string {
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleSubtitle.Render("---  "+footer+"  ---"))
}

func (a *App) renderSearch() string {
	var b strings.Builder
	boxWidth := min(70, a.width-4)

	b.WriteString(a.renderHeader())

	// Category selector
	var tabs []string
	for _, c := range prompts.Categories {
		label := fmt.Sprintf(" %s ", c)
		style := lipgloss.NewStyle().Foreground(colorMuted)
		if c == a.state.category {
			style = lipgloss.NewStyle().Foreground(colorWhite).Background(colorPrimary).Bold(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	categoryBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(a.borderFor(fieldCategory)).
		Render("Category  " + strings.Join(tabs, " "))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, categoryBox))
	b.WriteString("\n")

	// Query
	queryBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(a.borderFor(fieldQuery)).
		Render("Enter your query\n" + a.state.queryInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, queryBox))
	b.WriteString("\n")

	// API key
	keyBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(a.borderFor(fieldAPIKey)).
		Render("Gemini API Key\n" + a.state.apiKeyInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, keyBox))
	b.WriteString("\n")

	// Validation banner or notice
	switch {
	case a.state.formError != nil:
		banner := styleErrorBanner.Copy().Width(boxWidth).Render(a.state.formError.Message)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
		b.WriteString("\n")
	case a.state.noticeErr != nil:
		notice := lipgloss.NewStyle().Foreground(colorError).Render("Could not save settings: " + a.state.noticeErr.Error())
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n")
	case a.state.notice != "":
		notice := styleSubtitle.Render(a.state.notice)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Status bar
	var status string
	if a.state.focus == fieldCategory {
		status = "[Left/Right] Category  [Tab] Next field  [Enter] Search  [?] Help  [s] Settings  [Esc] Quit"
	} else {
		status = "[Tab] Next field  [Enter] Search  [Alt+Enter] New line  [Esc] Quit"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))
	b.WriteString("\n\n")
	b.WriteString(a.renderFooter())

	return a.centerVertically(b.String())
}

func (a *App) borderFor(f field) lipgloss.TerminalColor {
	if a.state.focus == f {
		return colorSecondary
	}
	return colorMuted
}
