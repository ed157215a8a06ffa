// Package response writes the listener's fixed-format responses.
//
// A response is a status line, an empty line and an optional body:
//
//	HTTP/1.1 200 OK\r\n\r\npong
//
// No headers are ever written; clients read until the connection closes.
package response

import (
	"fmt"
	"io"
)

// StatusCode is a response status code.
type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusNotFound            StatusCode = 404
	StatusTeapot              StatusCode = 418
	StatusInternalServerError StatusCode = 500
)

// Reason phrases are fixed per status; they are not taken from net/http.
var reasons = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusNotFound:            "Not found",
	StatusTeapot:              "I'm a teapot",
	StatusInternalServerError: "Internal Server Error",
}

// Reason returns the reason phrase written for code.
func (c StatusCode) Reason() string {
	return reasons[c]
}

// Response pairs a status with an optional plain-text body.
type Response struct {
	Status StatusCode
	Body   string
}

// OK returns a 200 response carrying body.
func OK(body string) Response {
	return Response{Status: StatusOK, Body: body}
}

// NotFound is returned for any unmatched route.
func NotFound() Response {
	return Response{Status: StatusNotFound}
}

// Teapot signals a request that failed to parse.
func Teapot() Response {
	return Response{Status: StatusTeapot}
}

// InternalError returns a 500 response whose body is err's text.
func InternalError(err error) Response {
	r := Response{Status: StatusInternalServerError}
	if err != nil {
		r.Body = err.Error()
	}
	return r
}

// StatusLine returns the status line without its terminator, e.g. "HTTP/1.1 404 Not found".
func (r Response) StatusLine() string {
	return fmt.Sprintf("HTTP/1.1 %d %s", r.Status, r.Status.Reason())
}

// Write writes r to w in a single call.
func Write(w io.Writer, r Response) error {
	buf := make([]byte, 0, 64+len(r.Body))
	buf = append(buf, r.StatusLine()...)
	buf = append(buf, "\r\n\r\n"...)
	buf = append(buf, r.Body...)

	_, err := w.Write(buf)
	return err
}
