// Package router maps a parsed request to the handler registered for its
// method and path.
//
// Matching is an ordered, exact, case-sensitive comparison of both the method
// and the raw request target. There is no prefix matching, no trailing-slash
// normalisation and no query-string parsing, so "/ping?x=1" does not match
// "/ping". A request that matches no route receives 404 Not found.
package router

import (
	"context"
	"fmt"

	"remote-controller/core/request"
	"remote-controller/core/response"
)

// HandlerFunc produces the response for a matched request.
type HandlerFunc func(ctx context.Context, req *request.Request) response.Response

// Route is a registered (method, path) pair.
type Route struct {
	Method request.Method
	Path   string
}

func (r Route) String() string {
	return string(r.Method) + " " + r.Path
}

type entry struct {
	route   Route
	handler HandlerFunc
}

// Router holds the ordered routing table. Register every route before the
// server starts; Dispatch is safe for concurrent use once registration is done.
type Router struct {
	entries []entry
}

// New creates an empty router.
func New() *Router {
	return &Router{}
}

// Handle appends a route. It fails on an unsupported method, a path that does
// not start with "/", or a (method, path) pair that is already registered.
func (r *Router) Handle(method request.Method, path string, h HandlerFunc) error {
	if _, ok := request.ParseMethod(string(method)); !ok {
		return fmt.Errorf("unsupported method %q", method)
	}
	if len(path) == 0 || path[0] != '/' {
		return fmt.Errorf("invalid path %q", path)
	}
	if h == nil {
		return fmt.Errorf("nil handler for %s %s", method, path)
	}

	route := Route{Method: method, Path: path}
	for _, e := range r.entries {
		if e.route == route {
			return fmt.Errorf("duplicate route %s", route)
		}
	}
	r.entries = append(r.entries, entry{route: route, handler: h})
	return nil
}

// Get registers a GET route.
func (r *Router) Get(path string, h HandlerFunc) error {
	return r.Handle(request.MethodGet, path, h)
}

// Post registers a POST route.
func (r *Router) Post(path string, h HandlerFunc) error {
	return r.Handle(request.MethodPost, path, h)
}

// Routes returns the registered routes in match order.
func (r *Router) Routes() []Route {
	routes := make([]Route, 0, len(r.entries))
	for _, e := range r.entries {
		routes = append(routes, e.route)
	}
	return routes
}

// Dispatch runs the first handler whose route equals the request's method and path.
func (r *Router) Dispatch(ctx context.Context, req *request.Request) response.Response {
	for _, e := range r.entries {
		if e.route.Method == req.Method && e.route.Path == req.Path {
			return e.handler(ctx, req)
		}
	}
	return response.NotFound()
}
