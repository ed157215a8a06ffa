// Package server runs the raw-protocol TCP listener.
//
// The listener accepts connections in a single loop and serves each one in its
// own goroutine through a fixed cycle:
//
//	accepted -> parsing -> (parse failed | dispatching) -> responding -> closed
//
// A request that fails to parse receives "418 I'm a teapot" and never reaches
// the dispatcher. Every other request receives whatever the dispatcher returns.
// Exactly one response is written per connection and the connection is then
// closed; there is no keep-alive.
//
// # Failure Isolation
//
// Read and write failures are logged and only drop the affected connection. A
// panic inside a connection goroutine is recovered and logged; the accept loop
// and all other connections keep running.
//
// # Resource Limits
//
// Config carries optional read and write timeouts (applied as connection
// deadlines), a cap on concurrently served connections, and the parser's line
// and header limits. None of them change the protocol for well-behaved clients.
//
// # Usage
//
//	srv := server.New(cfg.Server, rtr, log)
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal("Listener failed", zap.Error(err))
//	}
package server
