package request

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

const (
	// DefaultMaxLineBytes bounds a single request or header line.
	DefaultMaxLineBytes = 8192
	// DefaultMaxHeaders bounds the number of header lines in one request.
	DefaultMaxHeaders = 100

	headerSeparator = ": "
	// errorLinePreview caps how much of an oversized line is kept in a ParseError.
	errorLinePreview = 64
)

// Method is a request method accepted by the listener.
type Method string

const (
	MethodGet  Method = "GET"
	MethodPost Method = "POST"
)

// ParseMethod returns the Method for tok, which must match exactly.
func ParseMethod(tok string) (Method, bool) {
	switch Method(tok) {
	case MethodGet, MethodPost:
		return Method(tok), true
	default:
		return "", false
	}
}

// Headers maps header names, exactly as sent, to their last value.
type Headers map[string]string

// Get returns the value stored under name. Names are case-sensitive.
func (h Headers) Get(name string) (string, bool) {
	v, ok := h[name]
	return v, ok
}

// Request is a parsed request. It is not modified after Parse returns,
// except for RemoteAddr which the server fills in.
type Request struct {
	Method  Method
	Path    string
	Version string
	Headers Headers
	// RemoteAddr is the peer address of the connection the request arrived on.
	RemoteAddr string
}

// Options bounds the resources a single Parse call may consume.
// Zero values select the defaults.
type Options struct {
	MaxLineBytes int
	MaxHeaders   int
}

func (o Options) withDefaults() Options {
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = DefaultMaxLineBytes
	}
	if o.MaxHeaders <= 0 {
		o.MaxHeaders = DefaultMaxHeaders
	}
	return o
}

// Parse reads one request from r, stopping after the blank line that ends
// the header block.
func Parse(r io.Reader, opts Options) (*Request, error) {
	opts = opts.withDefaults()
	lr := newLineReader(r, opts.MaxLineBytes)

	line, err := lr.readLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newParseError(EmptyRequest, "")
		}
		return nil, err
	}
	if line == "" {
		return nil, newParseError(EmptyRequest, "")
	}

	req, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	for count := 0; ; count++ {
		line, err := lr.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, newParseError(Truncated, "")
			}
			return nil, err
		}
		if line == "" {
			break
		}
		if count >= opts.MaxHeaders {
			return nil, newParseError(TooManyHeaders, "")
		}

		name, value, ok := strings.Cut(line, headerSeparator)
		if !ok || name == "" {
			return nil, newParseError(MalformedHeader, line)
		}
		req.Headers[name] = value
	}

	return req, nil
}

func parseRequestLine(line string) (*Request, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return nil, newParseError(MalformedRequestLine, line)
	}

	method, ok := ParseMethod(parts[0])
	if !ok {
		return nil, newParseError(InvalidMethod, line)
	}
	if parts[1] == "" || parts[2] == "" {
		return nil, newParseError(MalformedRequestLine, line)
	}

	return &Request{
		Method:  method,
		Path:    parts[1],
		Version: parts[2],
		Headers: make(Headers),
	}, nil
}

type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader, maxLine int) *lineReader {
	// Room for the line terminator, so a line of exactly maxLine bytes fits.
	return &lineReader{r: bufio.NewReaderSize(r, maxLine+2)}
}

// readLine is like readLineSlice in net/textproto, but a line that does not
// fit the buffer is rejected instead of accumulated.
func (l *lineReader) readLine() (string, error) {
	b, isPrefix, err := l.r.ReadLine()
	if err != nil {
		return "", err
	}
	if isPrefix {
		preview := b
		if len(preview) > errorLinePreview {
			preview = preview[:errorLinePreview]
		}
		return "", newParseError(LineTooLong, string(preview))
	}
	return strings.TrimSuffix(string(b), "\r"), nil
}
