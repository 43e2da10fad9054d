// Package module holds the module contract and the bootstrap port registry
package module

import (
	phttp "workmonitor/internal/platform/net/http"
)

// Module mirrors modkit.Module so port sets can be resolved without importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
