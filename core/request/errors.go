package request

import "fmt"

// Kind identifies a class of malformed input.
type Kind int

const (
	// InvalidMethod means the method token is neither GET nor POST.
	InvalidMethod Kind = iota + 1
	// EmptyRequest means the stream ended or a blank line arrived before a request line.
	EmptyRequest
	// MalformedRequestLine means the request line does not hold exactly three tokens.
	MalformedRequestLine
	// MalformedHeader means a header line lacks the ": " separator.
	MalformedHeader
	// Truncated means the stream ended before the blank line closing the header block.
	Truncated
	// LineTooLong means a line exceeded Options.MaxLineBytes.
	LineTooLong
	// TooManyHeaders means the header block exceeded Options.MaxHeaders.
	TooManyHeaders
)

var kindNames = map[Kind]string{
	InvalidMethod:        "invalid method",
	EmptyRequest:         "empty request",
	MalformedRequestLine: "malformed request line",
	MalformedHeader:      "malformed header",
	Truncated:            "truncated request",
	LineTooLong:          "line too long",
	TooManyHeaders:       "too many headers",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseError reports why a request could not be parsed.
type ParseError struct {
	Kind Kind
	// Line is the offending input line, if any.
	Line string
}

func (e *ParseError) Error() string {
	if e.Line == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Line)
}

// Is matches any *ParseError of the same Kind, so the sentinels below work with errors.Is.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidMethod        = &ParseError{Kind: InvalidMethod}
	ErrEmptyRequest         = &ParseError{Kind: EmptyRequest}
	ErrMalformedRequestLine = &ParseError{Kind: MalformedRequestLine}
	ErrMalformedHeader      = &ParseError{Kind: MalformedHeader}
	ErrTruncated            = &ParseError{Kind: Truncated}
	ErrLineTooLong          = &ParseError{Kind: LineTooLong}
	ErrTooManyHeaders       = &ParseError{Kind: TooManyHeaders}
)

func newParseError(kind Kind, line string) *ParseError {
	return &ParseError{Kind: kind, Line: line}
}
