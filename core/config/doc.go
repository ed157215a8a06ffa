// Package config provides configuration management for the remote controller.
//
// It utilizes Viper for loading the configuration file named by --config
// (YAML, TOML or JSON), environment variables, and an optional .env file.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: listen address, timeouts, connection cap, parser limits
//   - Wol: physical address of the machine to wake and the broadcast address
//   - Log: logging level and format
//   - Database: optional MySQL/SQLite connection for the wake audit trail
//   - Audit: in-memory history size
//   - Admin: optional status server
//   - Client: target address for the ping and turn-on commands
//
// Environment variables override file values using upper-case keys with
// underscores, e.g. SERVER_LISTEN_ADDRESS or WOL_PHYSICAL_ADDRESS.
//
// # Usage
//
//	cfg, err := config.Load("/etc/remote-controller/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.ListenAddress)
package config
