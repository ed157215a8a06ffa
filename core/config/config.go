package config

import (
	"fmt"
	"net"
	"reflect"
	"strings"

	"remote-controller/core/admin"
	"remote-controller/core/audit"
	"remote-controller/core/client"
	"remote-controller/core/database"
	"remote-controller/core/logger"
	"remote-controller/core/server"
	"remote-controller/core/wol"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the raw-protocol listener.
	Server server.Config `mapstructure:"server"`
	// Wol holds the target machine and how to reach it.
	Wol wol.Config `mapstructure:"wol"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional audit database.
	Database database.Config `mapstructure:"database"`
	// Audit holds configuration for the wake audit trail.
	Audit audit.Config `mapstructure:"audit"`
	// Admin holds configuration for the status server.
	Admin admin.Config `mapstructure:"admin"`
	// Client holds configuration for the ping and turn-on commands.
	Client client.Config `mapstructure:"client"`
}

// Load reads the configuration file at path, applying .env and environment overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Load(".env")

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// Map environment variables to nested keys (e.g. SERVER_LISTEN_ADDRESS -> server.listen_address)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &config, nil
}

// Validate checks every section needed before a socket is bound.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Wol.Validate(); err != nil {
		return err
	}
	if c.Admin.Enabled && c.Admin.ListenAddress == "" {
		return fmt.Errorf("admin.listen_address is required when admin is enabled")
	}
	return nil
}

// ClientAddress returns the address the client commands dial. Without an
// explicit client.server_address it targets the local listener, replacing a
// wildcard host with the loopback address.
func (c *Config) ClientAddress() string {
	if c.Client.ServerAddress != "" {
		return c.Client.ServerAddress
	}

	host, port, err := net.SplitHostPort(c.Server.ListenAddress)
	if err != nil {
		return c.Server.ListenAddress
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
