// Package wake implements the wake-up feature of the listener.
//
// POST /turn_on transmits a Wake-on-LAN magic packet to the configured
// physical address and reports the outcome:
//
//   - 200 OK with an empty body when the packet was sent.
//   - 500 Internal Server Error with the transmission error as body otherwise.
//
// Failed transmissions are never retried. Every attempt, successful or not, is
// written to the audit trail; an audit failure is logged and does not change
// the response.
//
// # Components
//
//   - Service: sends the packet and records the attempt.
//   - Handler: adapts the service to the router.
//   - Feature: registers the route with the loader.
package wake
