// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register features (modules) and load their
// routes into the listener's router. Each feature implements the Feature
// interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(r *router.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// Features load in registration order, which is also route match order.
package loader
