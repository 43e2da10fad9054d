// Package modkit wires service modules: shared deps in, routes and ports out
package modkit

import (
	phttp "workmonitor/internal/platform/net/http"
)

// Module is the surface every service module exposes to the api composer
type Module interface {
	// MountRoutes attaches the module's endpoints to r
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross module wiring
	Ports() any

	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
