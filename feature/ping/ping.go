// Package ping provides the liveness route of the listener.
//
// GET /ping always answers 200 OK with the body "pong", whatever headers the
// request carries.
package ping

import (
	"context"

	"remote-controller/core/request"
	"remote-controller/core/response"
	"remote-controller/core/router"
)

// Path is the route served by this feature.
const Path = "/ping"

// Feature registers the ping route.
type Feature struct{}

// NewFeature creates the ping feature.
func NewFeature() *Feature {
	return &Feature{}
}

func (f *Feature) Name() string { return "ping" }

func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(r *router.Router) error {
	return r.Get(Path, HandlePing)
}

// HandlePing answers "pong".
func HandlePing(ctx context.Context, req *request.Request) response.Response {
	return response.OK("pong")
}
