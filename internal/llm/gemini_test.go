package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sant0-9/finder/internal/config"
)

const successBody = `{"candidates":[{"content":{"parts":[{"text":"Result X"}]}}]}`

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, calls
}

func TestGenerateSendsExpectedRequest(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotKey    string
		gotType   string
		gotBody   map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		gotType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, successBody)
	}))
	defer srv.Close()

	g := NewGeminiProvider(srv.URL+"/", "gemini-2.0-flash")
	_, err := g.Generate(context.Background(), NewRequest("k&y=1", "hello prompt"))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "k&y=1", gotKey)
	assert.Equal(t, "application/json", gotType)

	want := map[string]interface{}{
		"contents": []interface{}{
			map[string]interface{}{
				"parts": []interface{}{
					map[string]interface{}{"text": "hello prompt"},
				},
			},
		},
	}
	assert.Equal(t, want, gotBody)
}

func TestGenerateRequestModelOverridesDefault(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, successBody)
	}))
	defer srv.Close()

	g := NewGeminiProvider(srv.URL, "")
	assert.Equal(t, "gemini-2.0-flash", g.Model())

	resp, err := g.Generate(context.Background(), &GenerateRequest{APIKey: "k", Model: "gemini-1.5-pro", Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-1.5-pro:generateContent", gotPath)
	assert.Equal(t, "gemini-1.5-pro", resp.Model)
}

func TestGenerateSuccess(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, successBody)

	resp, err := NewGeminiProvider(srv.URL, "").Generate(context.Background(), NewRequest("key", "p"))
	require.NoError(t, err)
	assert.Equal(t, "Result X", resp.Text)
	assert.Equal(t, 1, int(calls.Load()))
}

func TestGenerateReadsUsage(t *testing.T) {
	body := `{
		"candidates": [{"content": {"parts": [{"text": "first"}, {"text": "second"}]}, "finishReason": "STOP"}],
		"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 30, "totalTokenCount": 42}
	}`
	srv, _ := newTestServer(t, http.StatusOK, body)

	resp, err := NewGeminiProvider(srv.URL, "").Generate(context.Background(), NewRequest("key", "p"))
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)
	assert.Equal(t, "STOP", resp.FinishReason)
	assert.Equal(t, Usage{PromptTokens: 12, CompletionTokens: 30, TotalTokens: 42}, resp.Usage)
}

func TestGenerateUnexpectedFormat(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing candidates", body: `{"promptFeedback":{"blockReason":"SAFETY"}}`},
		{name: "empty candidates", body: `{"candidates":[]}`},
		{name: "missing parts", body: `{"candidates":[{"content":{}}]}`},
		{name: "text not a string", body: `{"candidates":[{"content":{"parts":[{"text":7}]}}]}`},
		{name: "candidates not a list", body: `{"candidates":"nope"}`},
		{name: "not json", body: `<html>oops</html>`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tt.body)

			resp, err := NewGeminiProvider(srv.URL, "").Generate(context.Background(), NewRequest("key", "p"))
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrUnexpectedFormat)
		})
	}
}

func TestGenerateEmptyTextIsSuccess(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":""}]}}]}`)

	resp, err := NewGeminiProvider(srv.URL, "").Generate(context.Background(), NewRequest("key", "p"))
	require.NoError(t, err)
	assert.Equal(t, "", resp.Text)
}

func TestGenerateStatusError(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusBadRequest, `{"error":{"message":"API key not valid"}}`)

	_, err := NewGeminiProvider(srv.URL, "").Generate(context.Background(), NewRequest("key", "p"))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, http.StatusBadRequest, te.StatusCode)
	assert.Contains(t, err.Error(), "400 Bad Request")
	assert.Contains(t, err.Error(), "API key not valid")
	assert.Equal(t, 1, int(calls.Load()), "no retries")
}

func TestGenerateTruncatesLongErrorBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, strings.Repeat("x", 2000))

	_, err := NewGeminiProvider(srv.URL, "").Generate(context.Background(), NewRequest("key", "p"))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Len(t, te.Body, maxErrorBody+len("..."))
}

func TestGenerateConnectionFailureHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewGeminiProvider(url, "").Generate(context.Background(), NewRequest("super-secret", "p"))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 0, te.StatusCode)
	assert.Contains(t, err.Error(), "Post request failed")
	assert.NotContains(t, err.Error(), "super-secret")
}

func TestGenerateCancelledContext(t *testing.T) {
	srv, calls := newTestServer(t, http.StatusOK, successBody)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGeminiProvider(srv.URL, "").Generate(ctx, NewRequest("key", "p"))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, int(calls.Load()))
}

func TestNewProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())

	cfg.BaseURL = "ftp://example.com"
	_, err = NewProvider(cfg)
	assert.Error(t, err)

	cfg.BaseURL = "http://[::1"
	_, err = NewProvider(cfg)
	assert.Error(t, err)
}
