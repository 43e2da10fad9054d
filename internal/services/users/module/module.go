// Package module wires the user resolver and the user admin API
package module

import (
	"net/http"

	"workmonitor/internal/modkit"
	"workmonitor/internal/modkit/httpkit"
	pstrings "workmonitor/internal/platform/strings"
	"workmonitor/internal/services/users/domain"
	usershttp "workmonitor/internal/services/users/http"
	"workmonitor/internal/services/users/repo"
	"workmonitor/internal/services/users/service"
)

// Ports exposed by the users module
type Ports struct {
	Resolver domain.ResolverPort
	Admin    domain.AdminPort
}

// Module implements the users module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	register func(httpkit.Router)
	ports    Ports
}

// New constructs the users module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("users"), modkit.WithPrefix("/users")}, opts...)...)
	svc := service.New(deps.PG, repo.NewPG())

	m := &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		ports:  Ports{Resolver: svc, Admin: svc},
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		usershttp.Register(r, svc)
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

// Ports returns the resolver and admin ports
func (m *Module) Ports() any { return m.ports }
