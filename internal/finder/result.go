package finder

// Kind classifies why a search failed
type Kind int

const (
	KindValidation Kind = iota + 1
	KindTransport
	KindFormat
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Error is a failed search, ready to show to the user
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Result is the outcome of one search: Text on success, Err otherwise
type Result struct {
	Text string
	Err  *Error
}

func (r Result) OK() bool {
	return r.Err == nil
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(err *Error) Result {
	return Result{Err: err}
}
