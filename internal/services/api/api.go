// Package api composes the service modules into the HTTP surface
package api

import (
	"workmonitor/internal/platform/config"
	"workmonitor/internal/platform/logger"
	phttp "workmonitor/internal/platform/net/http"
	"workmonitor/internal/platform/store"

	"workmonitor/internal/modkit"
	"workmonitor/internal/modkit/httpkit"
	"workmonitor/internal/modkit/module"
	"workmonitor/internal/modkit/swaggerkit"

	activitymod "workmonitor/internal/services/activity/module"
	metamod "workmonitor/internal/services/api/meta/module"
	usersmod "workmonitor/internal/services/users/module"
	webhookmod "workmonitor/internal/services/webhook/module"
)

// Options are the API options
type Options struct {
	// Config is the unprefixed root, modules pick their own prefixes
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
//
//	/api/v1/meta/*         health and build info
//	/api/v1/activities/*   activity read API
//	/api/v1/users/*        users and their github usernames
//	/api/webhooks/github   GitHub deliveries
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	users := usersmod.New(deps)
	activity := activitymod.New(deps)
	writer := module.MustPortsOf[activitymod.Ports](activity).Writer

	webhook := webhookmod.New(deps, modkit.WithPorts(webhookmod.Ports{
		Resolver: module.MustPortsOf[usersmod.Ports](users).Resolver,
		Writer:   writer,
	}))

	for _, m := range []module.Module{users, activity, webhook} {
		module.Register(m.Name(), m.Ports())
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		metamod.New(deps).MountRoutes(api)
		activity.MountRoutes(api)
		users.MountRoutes(api)
	})

	// deliveries answer with bare JSON bodies, outside the v1 envelope
	httpkit.MountUnder(r, "/api/webhooks", httpkit.CommonStack(), webhook.MountRoutes)
}
