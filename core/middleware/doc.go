// Package middleware contains HTTP middleware for the Fiber admin server.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// The raw-protocol listener does not use these; it tags its logs with a
// per-connection ID instead (see core/logger.WithConnection).
package middleware
