package server

import (
	"fmt"
	"net"
	"time"

	"remote-controller/core/request"
)

// Config holds configuration for the raw-protocol listener.
type Config struct {
	// ListenAddress is the host:port the listener binds to.
	ListenAddress string `mapstructure:"listen_address" default:""`
	// ReadTimeoutSeconds bounds how long a client may take to send its request. 0 disables it.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"30"`
	// WriteTimeoutSeconds bounds how long writing the response may take. 0 disables it.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"30"`
	// MaxConnections caps concurrently served connections. 0 means unlimited.
	MaxConnections int `mapstructure:"max_connections" default:"0"`
	// MaxLineBytes bounds a single request or header line.
	MaxLineBytes int `mapstructure:"max_line_bytes" default:"8192"`
	// MaxHeaders bounds the number of header lines per request.
	MaxHeaders int `mapstructure:"max_headers" default:"100"`
}

// Validate checks that the listener can be configured from c.
func (c Config) Validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("server.listen_address is required")
	}
	if _, _, err := net.SplitHostPort(c.ListenAddress); err != nil {
		return fmt.Errorf("invalid server.listen_address %q: %w", c.ListenAddress, err)
	}
	if c.ReadTimeoutSeconds < 0 || c.WriteTimeoutSeconds < 0 {
		return fmt.Errorf("server timeouts must not be negative")
	}
	if c.MaxConnections < 0 {
		return fmt.Errorf("server.max_connections must not be negative")
	}
	return nil
}

// ReadTimeout returns the per-connection read timeout, or 0.
func (c Config) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the per-connection write timeout, or 0.
func (c Config) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ParseOptions returns the request parser limits.
func (c Config) ParseOptions() request.Options {
	return request.Options{
		MaxLineBytes: c.MaxLineBytes,
		MaxHeaders:   c.MaxHeaders,
	}
}
