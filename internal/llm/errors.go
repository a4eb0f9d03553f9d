package llm

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrUnexpectedFormat is returned when a 2xx reply does not carry text at
// candidates[0].content.parts[0].text. Empty, malformed and missing
// candidates are not told apart.
var ErrUnexpectedFormat = errors.New("unexpected response format")

// TransportError covers network failures and non-2xx replies
type TransportError struct {
	StatusCode int
	Status     string
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: %s", e.Status, e.Body)
	}
	return e.Status
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// maxErrorBody caps how much of an error reply is kept
const maxErrorBody = 512

func snippet(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}

// redact drops the request URL from client errors; it carries the API key
// as a query parameter.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
