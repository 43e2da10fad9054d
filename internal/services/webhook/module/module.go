// Package module wires the GitHub webhook endpoint using modkit
package module

import (
	"net/http"

	"workmonitor/internal/adapters/ingest/github"
	"workmonitor/internal/core/signature"
	"workmonitor/internal/core/version"
	"workmonitor/internal/modkit"
	"workmonitor/internal/modkit/httpkit"
	"workmonitor/internal/platform/logger"
	pstrings "workmonitor/internal/platform/strings"
	activity "workmonitor/internal/services/activity/domain"
	users "workmonitor/internal/services/users/domain"
	"workmonitor/internal/services/webhook/domain"
	webhookhttp "workmonitor/internal/services/webhook/http"
	"workmonitor/internal/services/webhook/service"
)

// Ports are the collaborators the webhook module needs, passed with modkit.WithPorts
type Ports struct {
	Resolver users.ResolverPort
	Writer   activity.WriterPort
}

// Exposed is the port set the module offers
type Exposed struct {
	Dispatcher domain.DispatcherPort
}

// Module implements the webhook module
type Module struct {
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	handler *webhookhttp.Handler
	ports   Exposed
}

// New constructs the webhook module, it panics without Ports
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("webhook"), modkit.WithPrefix("/github")}, opts...)...)
	in, ok := b.Ports.(Ports)
	if !ok {
		panic("webhook module requires webhook.Ports via modkit.WithPorts")
	}

	o := FromConfig(deps.Cfg)
	log := logger.Named("webhook")
	if o.Secret == "" {
		log.Warn().Msg("GITHUB_WEBHOOK_SECRET is empty, signatures are not checked and any caller can post deliveries")
	}

	var svcOpts []service.Option
	if o.CommitStats {
		gh := github.OptionsFromConfig(deps.Cfg)
		gh.UserAgent = version.UserAgent("workmonitor-api")
		svcOpts = append(svcOpts, service.WithCommitStats(github.NewClient(gh)))
	}
	svc := service.New(in.Resolver, in.Writer, service.Config{
		Dedupe:          o.Dedupe,
		PushConcurrency: o.PushConcurrency,
		StatsTimeout:    o.StatsTimeout,
	}, svcOpts...)

	log.Info().
		Bool("signature_required", o.Secret != "").
		Bool("dedupe", o.Dedupe).
		Bool("commit_stats", o.CommitStats).
		Int("push_concurrency", o.PushConcurrency).
		Msg("webhook module ready")

	return &Module{
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		handler: &webhookhttp.Handler{
			Verifier: signature.New(o.Secret),
			Svc:      svc,
			MaxBody:  o.MaxBodyBytes,
		},
		ports: Exposed{Dispatcher: svc},
	}
}

// MountRoutes mounts POST and GET under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, pstrings.MustPrefix(m.prefix), m.mws, func(sub httpkit.Router) {
		webhookhttp.Register(sub, m.handler)
	})
}

// Name returns the module name
func (m *Module) Name() string { return pstrings.MustString(m.name, "module name") }

// Ports returns the dispatcher
func (m *Module) Ports() any { return m.ports }
