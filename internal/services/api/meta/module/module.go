// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	"workmonitor/internal/modkit"
	"workmonitor/internal/modkit/httpkit"
	pstrings "workmonitor/internal/platform/strings"

	metahttp "workmonitor/internal/services/api/meta/http"
)

// ServiceName is reported by the health, version and service endpoints
const ServiceName = "workmonitor-api"

// Module implements the modkit.Module interface
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		startedAt: time.Now(),
	}

	d := metahttp.Deps{ServiceName: ServiceName, StartedAt: m.startedAt}
	// typed nils must stay untyped so the ready check reports skipped
	if deps.PG != nil {
		d.PG = deps.PG
	}
	if deps.CH != nil {
		d.CH = deps.CH
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, d)
		external(r)
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstrings.MustPrefix(m.prefix), m.mws, m.register)
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return pstrings.MustString(m.name, "meta") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
