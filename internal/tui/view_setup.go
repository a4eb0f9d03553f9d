package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/finder/internal/config"
)

func (a *App) renderSetup() string {
	switch a.state.setupStep {
	case 0:
		return a.renderModelSelection()
	case 1:
		return a.renderAPIKeyEntry()
	default:
		return ""
	}
}

func (a *App) renderModelSelection() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())

	// Title
	heading := styleHeading.Render("Welcome! Choose a Gemini model:")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, heading))
	b.WriteString("\n\n")

	// Model list
	var modelLines []string
	for i, m := range config.Models {
		var line string
		cursor := "  "
		if i == a.state.selectedModel {
			cursor = "> "
			line = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true).
				Render(fmt.Sprintf("%s[x] %-22s %s", cursor, m.Name, m.Description))
		} else {
			line = lipgloss.NewStyle().
				Foreground(colorMuted).
				Render(fmt.Sprintf("%s[ ] %-22s %s", cursor, m.Name, m.Description))
		}
		modelLines = append(modelLines, line)
	}

	modelBox := styleBox.Copy().
		Width(64).
		Render(strings.Join(modelLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, modelBox))
	b.WriteString("\n\n")

	// Instructions
	instructions := styleStatusBar.Render("[j/k] Navigate  [Enter] Select  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) renderAPIKeyEntry() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())

	heading := styleHeading.Render("Enter your Gemini API key:")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, heading))
	b.WriteString("\n\n")

	// Signup link
	link := styleSubtitle.Render(fmt.Sprintf("Get one at: %s", config.SignupURL))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, link))
	b.WriteString("\n\n")

	// Input
	inputBox := styleBox.Copy().
		Width(60).
		BorderForeground(colorSecondary).
		Render(a.state.apiKeyInput.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	// Remember toggle
	check := "[ ]"
	if a.state.config.RememberKey {
		check = "[x]"
	}
	remember := styleSubtitle.Render(check + " Remember key in ~/.config/finder/config.yaml")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, remember))
	b.WriteString("\n\n")

	if a.state.formError != nil {
		banner := styleErrorBanner.Copy().Width(60).Render(a.state.formError.Message)
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
		b.WriteString("\n\n")
	}

	// Instructions
	instructions := styleStatusBar.Render("[Enter] Continue  [Ctrl+R] Remember key  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
