// Package request parses the restricted request protocol spoken by the listener.
//
// A request is a request line followed by zero or more header lines and a
// terminating blank line. Bodies are never read.
//
//	POST /turn_on HTTP/1.1\r\n
//	Host: remote.local\r\n
//	\r\n
//
// # Framing
//
// Lines end with CRLF or a bare LF. The request line is split on single spaces
// into exactly three tokens (method, target, version). Header lines are split on
// the first ": " into a name and a value; the last occurrence of a name wins.
//
// # Errors
//
// Every malformed input yields a *ParseError whose Kind identifies the problem.
// Use errors.Is with the exported sentinels (ErrInvalidMethod, ErrTruncated, ...)
// to match a kind. Read failures other than io.EOF are returned as they are, so
// callers can tell a misbehaving client from a broken connection.
//
// # Usage
//
//	req, err := request.Parse(conn, request.Options{MaxLineBytes: 8192})
//	if errors.Is(err, request.ErrInvalidMethod) {
//	    // reject
//	}
package request
