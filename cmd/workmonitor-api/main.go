// @title         workmonitor API
// @version       1.0
// @description   GitHub webhook ingestion and the activity read API

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"workmonitor/internal/platform/config"
	"workmonitor/internal/platform/logger"
	phttp "workmonitor/internal/platform/net/http"
	"workmonitor/internal/platform/store"

	"workmonitor/internal/services/api"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Init(logger.FromEnv())
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_") // CORE_API_PORT, CORE_API_SWAGGER, ...

	// postgres always, clickhouse when SERVICE_CLICKHOUSE_ENABLED is set
	st, err := store.Open(ctx, store.ConfigFromEnv("api"), store.WithLogger(*logger.Named("store")))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
	}
}
