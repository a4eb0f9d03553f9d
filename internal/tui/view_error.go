package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sant0-9/finder/internal/finder"
)

func (a *App) renderError() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Results")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	// Error message
	errMsg := "Unknown error"
	if a.state.searchErr != nil {
		errMsg = a.state.searchErr.Message
	}

	errBox := styleErrorBanner.Copy().
		Width(min(70, a.width-4)).
		Render(errMsg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errBox))
	b.WriteString("\n\n")

	if suggestions := suggestionsFor(a.state.searchErr); len(suggestions) > 0 {
		suggBox := styleBox.Copy().
			Width(min(70, a.width-4)).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, suggBox))
		b.WriteString("\n\n")
	}

	// Actions
	status := styleStatusBar.Render("[r] Retry  [s] Settings  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

// suggestionsFor offers next steps based on what went wrong
func suggestionsFor(err *finder.Error) []string {
	if err == nil {
		return nil
	}

	if err.Kind == finder.KindFormat {
		return []string{
			"The API answered but without any generated text",
			"The prompt may have been blocked; try rephrasing the query",
		}
	}

	msg := strings.ToLower(err.Message)
	switch {
	case strings.Contains(msg, "api key") || strings.Contains(msg, "400") ||
		strings.Contains(msg, "401") || strings.Contains(msg, "403"):
		return []string{
			"Check your Gemini API key",
			"Press [s] to update it in settings",
		}
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota"):
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and try again",
		}
	case strings.Contains(msg, "404"):
		return []string{
			"The selected model may not exist",
			"Press [s] to pick another model",
		}
	case strings.Contains(msg, "deadline exceeded") || strings.Contains(msg, "timeout"):
		return []string{
			"The request timed out",
			"Raise request_timeout in ~/.config/finder/config.yaml",
		}
	case strings.Contains(msg, "connection") || strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "dial"):
		return []string{
			"Check your internet connection",
		}
	case strings.Contains(msg, "500") || strings.Contains(msg, "503"):
		return []string{
			"The API is having trouble",
			"Wait a moment and try again",
		}
	}
	return nil
}
