package llm

import (
	"context"
)

// Provider is the interface generative-language backends implement
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate sends a single prompt and returns the generated text.
	// Exactly one outbound request is made per call.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest is one prompt sent with the caller's credential
type GenerateRequest struct {
	APIKey string
	Model  string
	Prompt string
}

// GenerateResponse is the text extracted from a successful reply
type GenerateResponse struct {
	Text         string
	Model        string
	FinishReason string
	Usage        Usage
}

// Usage tracks token usage reported by the API
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// NewRequest creates a request for the provider's default model
func NewRequest(apiKey, prompt string) *GenerateRequest {
	return &GenerateRequest{
		APIKey: apiKey,
		Prompt: prompt,
	}
}
