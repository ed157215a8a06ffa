package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"

	"remote-controller/core/request"
	"remote-controller/core/response"
)

// DefaultTimeout applies when neither the client nor ctx set a deadline.
const DefaultTimeout = 10 * time.Second

// ErrMalformedResponse is returned when the status line cannot be parsed.
var ErrMalformedResponse = errors.New("malformed response")

// StatusError reports a non-2xx response.
type StatusError struct {
	Code   int
	Reason string
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server responded %d %s", e.Code, e.Reason)
	}
	return fmt.Sprintf("server responded %d %s: %s", e.Code, e.Reason, e.Body)
}

// Result is a successful response.
type Result struct {
	Code   int
	Reason string
	Body   string
}

// Client dials Address for every call.
type Client struct {
	Address string
	Timeout time.Duration
}

// New builds a client from its config section. address is used when
// cfg.ServerAddress is empty.
func New(cfg Config, address string) *Client {
	if cfg.ServerAddress != "" {
		address = cfg.ServerAddress
	}
	return &Client{
		Address: address,
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}
}

// Ping sends GET /ping and returns the body, "pong" on a healthy server.
func (c *Client) Ping(ctx context.Context) (string, error) {
	res, err := c.Do(ctx, request.MethodGet, "/ping")
	if err != nil {
		return "", err
	}
	return res.Body, nil
}

// TurnOn sends POST /turn_on. Only the status matters.
func (c *Client) TurnOn(ctx context.Context) error {
	_, err := c.Do(ctx, request.MethodPost, "/turn_on")
	return err
}

// Do performs one exchange. A non-2xx status is returned as *StatusError.
func (c *Client) Do(ctx context.Context, method request.Method, path string) (*Result, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", c.Address, err)
	}
	defer conn.Close()

	deadline, _ := ctx.Deadline()
	if err := conn.SetDeadline(deadline); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}
	// Unblock reads if ctx is cancelled before the deadline.
	stop := context.AfterFunc(ctx, func() { _ = conn.SetDeadline(time.Now()) })
	defer stop()

	raw := fmt.Sprintf("%s %s HTTP/1.1\r\nHost: %s\r\n\r\n", method, path, c.Address)
	if _, err := io.WriteString(conn, raw); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	res, err := readResponse(conn)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("read response: %w", ctx.Err())
		}
		return nil, fmt.Errorf("read response: %w", err)
	}

	if res.Code < 200 || res.Code > 299 {
		return nil, &StatusError{Code: res.Code, Reason: res.Reason, Body: res.Body}
	}
	return res, nil
}

// readResponse parses the status line, skips any header lines and reads the
// rest of the stream as the body.
func readResponse(r io.Reader) (*Result, error) {
	br := bufio.NewReader(r)

	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
		}
		return nil, err
	}
	res, err := parseStatusLine(strings.TrimRight(line, "\r\n"))
	if err != nil {
		return nil, err
	}

	for {
		h, err := br.ReadString('\n')
		if strings.TrimRight(h, "\r\n") == "" || err != nil {
			if err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			break
		}
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return nil, err
	}
	res.Body = string(body)
	return res, nil
}

func parseStatusLine(line string) (*Result, error) {
	version, rest, ok := strings.Cut(line, " ")
	if !ok || !strings.HasPrefix(version, "HTTP/") {
		return nil, fmt.Errorf("%w: status line %q", ErrMalformedResponse, line)
	}
	codeText, reason, _ := strings.Cut(rest, " ")
	code, err := strconv.Atoi(codeText)
	if err != nil || code < 100 || code > 999 {
		return nil, fmt.Errorf("%w: status code %q", ErrMalformedResponse, codeText)
	}
	if reason == "" {
		reason = response.StatusCode(code).Reason()
	}
	return &Result{Code: code, Reason: reason}, nil
}
