package prompts

import (
	_ "embed"
	"strings"
)

//go:embed tool.md
var toolTemplate string

//go:embed business.md
var businessTemplate string

//go:embed service.md
var serviceTemplate string

// queryPlaceholder marks where the user's query goes in a template
const queryPlaceholder = "{query}"

// Build constructs the prompt sent to the model for a category and query.
// The query is inserted verbatim. Unknown categories use the service template.
func Build(c Category, query string) string {
	var tmpl string
	switch c {
	case ToolFinder:
		tmpl = toolTemplate
	case BusinessFinder:
		tmpl = businessTemplate
	default:
		tmpl = serviceTemplate
	}

	return strings.Replace(strings.TrimSpace(tmpl), queryPlaceholder, query, 1)
}

// LeadIn returns the fixed text that precedes the query for a category
func LeadIn(c Category) string {
	prompt := Build(c, queryPlaceholder)
	return prompt[:strings.Index(prompt, queryPlaceholder)]
}
