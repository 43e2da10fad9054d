package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"workmonitor/internal/platform/config"
	"workmonitor/internal/platform/net/middleware"
)

// CommonStack is the baseline middleware for every mounted module
// CORE_API_CORS_ORIGINS and CORE_API_SLOW_MS tune it
func CommonStack() []func(http.Handler) http.Handler {
	cfg := config.New().Prefix("CORE_API_")
	return []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RequestContext(),

		middleware.RecoverJSON,
		middleware.NoCache(),

		middleware.AccessLog(middleware.AccessLogOptions{
			Slow: time.Duration(cfg.MayInt("SLOW_MS", 1000)) * time.Millisecond,
		}),

		middleware.CORS(middleware.CORSOptions{
			AllowedOrigins: cfg.MayCSV("CORS_ORIGINS", nil),
		}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}
