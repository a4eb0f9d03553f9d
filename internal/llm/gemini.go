package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel   = "gemini-2.0-flash"
)

// Response paths, in gjson syntax
const (
	pathText             = "candidates.0.content.parts.0.text"
	pathFinishReason     = "candidates.0.finishReason"
	pathPromptTokens     = "usageMetadata.promptTokenCount"
	pathCandidatesTokens = "usageMetadata.candidatesTokenCount"
	pathTotalTokens      = "usageMetadata.totalTokenCount"
)

type GeminiProvider struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewGeminiProvider creates a client for the generateContent endpoint.
// The client sets no timeout of its own; deadlines come from the context.
func NewGeminiProvider(baseURL, model string) *GeminiProvider {
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	if model == "" {
		model = geminiModel
	}
	return &GeminiProvider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{},
	}
}

func (g *GeminiProvider) Name() string {
	return "gemini"
}

// Model returns the default model used when a request names none
func (g *GeminiProvider) Model() string {
	return g.model
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

func (g *GeminiProvider) endpoint(model, apiKey string) string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.baseURL, url.PathEscape(model), url.QueryEscape(apiKey))
}

func (g *GeminiProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = g.model
	}

	apiReq := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}

	body, err := json.Marshal(apiReq)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.endpoint(model, req.APIKey),
		bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: redact(err)}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: redact(err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("reading response: %w", err),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       snippet(bytes.TrimSpace(data)),
		}
	}

	text, err := extractText(data)
	if err != nil {
		return nil, err
	}

	return &GenerateResponse{
		Text:         text,
		Model:        model,
		FinishReason: gjson.GetBytes(data, pathFinishReason).String(),
		Usage: Usage{
			PromptTokens:     int(gjson.GetBytes(data, pathPromptTokens).Int()),
			CompletionTokens: int(gjson.GetBytes(data, pathCandidatesTokens).Int()),
			TotalTokens:      int(gjson.GetBytes(data, pathTotalTokens).Int()),
		},
	}, nil
}

func extractText(data []byte) (string, error) {
	if !gjson.ValidBytes(data) {
		return "", ErrUnexpectedFormat
	}
	result := gjson.GetBytes(data, pathText)
	if result.Type != gjson.String {
		return "", ErrUnexpectedFormat
	}
	return result.Str, nil
}
