// Package client talks to a running listener over the raw wire format.
//
// A call opens one connection, writes a request line with a Host header and a
// blank line, then reads until the server closes the connection. Responses
// carry no Content-Length, so everything after the blank line is the body.
package client
