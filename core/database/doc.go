// Package database manages the optional SQL connection used for the wake audit trail.
//
// It uses GORM with the MySQL driver for shared deployments and the SQLite
// driver for single-host installs. The connection is optional: when no driver is
// configured, or the connection fails, the service logs a warning and keeps its
// wake history in memory instead.
//
// # Configuration
//
//   - Driver: mysql, sqlite, or empty to disable
//   - Host, Port, User, Password, Name: MySQL DSN parts (Name is the file path for sqlite)
//   - TimeoutSeconds: connect, read and write timeout
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
