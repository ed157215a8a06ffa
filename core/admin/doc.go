// Package admin serves the optional status API over HTTP using Fiber.
//
// It runs on its own address, separate from the raw-protocol listener, and
// only exposes read-only information about the running service.
//
// # HTTP Endpoints
//
//   - GET /health : Always "ok" while the process is up.
//   - GET /ready : "ready" once the listener accepts connections, 503 before.
//   - GET /wakes : Recent wake attempts, newest first (supports ?limit=N, max 100).
//
// Every request gets a RayID (see core/middleware/rayid) and is logged with it.
package admin
