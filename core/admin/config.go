package admin

// Config holds configuration for the admin status server.
type Config struct {
	// Enabled starts the admin server alongside the listener.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// ListenAddress is the host:port the admin server binds to.
	ListenAddress string `mapstructure:"listen_address" default:":8081"`
}
