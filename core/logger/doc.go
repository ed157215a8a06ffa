// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and carries correlation fields for the two kinds
// of traffic the service handles.
//
// # Correlation
//
//   - WithConnection tags every log line of one raw-protocol connection with a
//     conn_id and the peer address, so a parse, dispatch and respond cycle can be
//     followed across concurrent connections.
//   - WithRayID extracts the RayID set by the rayid middleware on the admin
//     server and attaches it to the entry.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
//
//	l := logger.WithConnection(log, connID, conn.RemoteAddr().String())
//	l.Warn("Dropping connection", zap.Error(err))
package logger
