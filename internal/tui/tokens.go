package tui

import (
	"fmt"
	"strings"
)

// estimateTokens returns approximate token count (~4 chars per token)
func estimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// maskKey hides all but the ends of an API key
func maskKey(k string) string {
	k = strings.TrimSpace(k)
	switch {
	case k == "":
		return "Not set"
	case len(k) > 8:
		return k[:4] + "****" + k[len(k)-4:]
	default:
		return "****"
	}
}

// formatTokens renders a rough size hint for the status bar
func formatTokens(text string) string {
	n := estimateTokens(text)
	if n >= 1000 {
		return fmt.Sprintf("~%.1fk tokens", float64(n)/1000)
	}
	return fmt.Sprintf("~%d tokens", n)
}
