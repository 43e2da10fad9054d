// Package module wires activity storage and its read API using modkit
package module

import (
	"net/http"

	"workmonitor/internal/modkit"
	"workmonitor/internal/modkit/httpkit"
	pstrings "workmonitor/internal/platform/strings"
	"workmonitor/internal/services/activity/domain"
	activityhttp "workmonitor/internal/services/activity/http"
	"workmonitor/internal/services/activity/repo"
	"workmonitor/internal/services/activity/service"
)

// Ports exposed by the activity module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
}

// Module implements the activity module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
	ports    Ports
}

// New constructs the activity module
// the clickhouse mirror is on when deps.CH is set
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("activity"), modkit.WithPrefix("/activities")}, opts...)...)

	var svcOpts []service.Option
	if mirror := repo.NewMirror(deps.CH); mirror != nil {
		svcOpts = append(svcOpts, service.WithMirror(mirror))
	}
	svc := service.New(deps.PG, repo.NewPG(), svcOpts...)

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Writer: svc, Query: svc},
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		activityhttp.Register(r, svc)
		external(r)
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstrings.MustPrefix(m.prefix), m.mws, m.register)
}

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.name, "module name") }

// Ports returns the writer and query ports
func (m *Module) Ports() any { return m.ports }
