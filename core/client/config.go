package client

// Config holds configuration for the command-line client.
type Config struct {
	// ServerAddress is the host:port of the listener. Empty means the local listener.
	ServerAddress string `mapstructure:"server_address" default:""`
	// TimeoutSeconds bounds a whole request/response exchange.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
