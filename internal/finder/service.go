package finder

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sant0-9/finder/internal/llm"
)

const (
	msgFetchFailed      = "Unable to fetch response from API. Details: "
	msgUnexpectedFormat = "Unexpected response format from API."
)

// Service turns a Request into a prompt, sends it and classifies the outcome
type Service struct {
	provider llm.Provider
	timeout  time.Duration
	log      *zap.Logger

	mu    sync.RWMutex
	model string
}

// NewService creates a search service. A zero timeout leaves the deadline to
// the caller's context.
func NewService(provider llm.Provider, model string, timeout time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		provider: provider,
		model:    model,
		timeout:  timeout,
		log:      log.Named("finder"),
	}
}

// Model returns the model searches are sent to
func (s *Service) Model() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model
}

// SetModel changes the model used by later searches
func (s *Service) SetModel(model string) {
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
}

// Timeout returns the per-search deadline
func (s *Service) Timeout() time.Duration {
	return s.timeout
}

// Search runs one search. Invalid requests fail without any network call.
func (s *Service) Search(ctx context.Context, req Request) Result {
	model := s.Model()
	log := s.log.With(
		zap.String("category", req.Category.ID()),
		zap.Int("query_len", len(req.Query)),
		zap.String("model", model),
	)

	if verr := req.Validate(); verr != nil {
		log.Info("search rejected", zap.String("reason", verr.Message))
		return failure(verr)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := s.provider.Generate(ctx, &llm.GenerateRequest{
		APIKey: strings.TrimSpace(req.Credential),
		Model:  model,
		Prompt: req.Prompt(),
	})
	elapsed := time.Since(start)

	if err != nil {
		ferr := classify(err)
		log.Warn("search failed",
			zap.Stringer("kind", ferr.Kind),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return failure(ferr)
	}

	log.Info("search completed",
		zap.Duration("elapsed", elapsed),
		zap.Int("result_len", len(resp.Text)),
		zap.String("finish_reason", resp.FinishReason),
		zap.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return success(resp.Text)
}

func classify(err error) *Error {
	if errors.Is(err, llm.ErrUnexpectedFormat) {
		return &Error{Kind: KindFormat, Message: msgUnexpectedFormat, Cause: err}
	}
	return &Error{Kind: KindTransport, Message: msgFetchFailed + err.Error(), Cause: err}
}
