package finder

import (
	"strings"

	"github.com/sant0-9/finder/internal/config"
	"github.com/sant0-9/finder/internal/prompts"
)

const (
	msgMissingKey   = "Please provide a valid Gemini API Key."
	msgMissingQuery = "Please enter a query."
)

// Request is everything one search needs. It is built fresh for every
// search and passed by value.
type Request struct {
	Credential string
	Category   prompts.Category
	Query      string
}

// Validate checks the credential first, then the query. It never touches
// the network.
func (r Request) Validate() *Error {
	if err := ValidateCredential(r.Credential); err != nil {
		return err
	}
	if strings.TrimSpace(r.Query) == "" {
		return &Error{Kind: KindValidation, Message: msgMissingQuery}
	}
	return nil
}

// Prompt renders the category template around the query
func (r Request) Prompt() string {
	return prompts.Build(r.Category, r.Query)
}

// ValidateCredential rejects an empty or placeholder API key
func ValidateCredential(key string) *Error {
	key = strings.TrimSpace(key)
	if key == "" || key == config.PlaceholderAPIKey {
		return &Error{Kind: KindValidation, Message: msgMissingKey}
	}
	return nil
}
