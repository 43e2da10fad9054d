package module

import (
	"time"

	"workmonitor/internal/platform/config"
	webhookhttp "workmonitor/internal/services/webhook/http"
	"workmonitor/internal/services/webhook/service"
)

// Options holds the webhook settings read from GITHUB_WEBHOOK_*
type Options struct {
	// Secret is the shared HMAC secret, empty accepts unsigned deliveries
	Secret          string
	MaxBodyBytes    int64
	PushConcurrency int
	Dedupe          bool
	CommitStats     bool
	StatsTimeout    time.Duration
}

// FromConfig reads GITHUB_WEBHOOK_SECRET, MAX_BODY_BYTES, PUSH_CONCURRENCY, DEDUPE,
// COMMIT_STATS and COMMIT_STATS_TIMEOUT
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("GITHUB_WEBHOOK_")
	return Options{
		Secret:          c.MayString("SECRET", ""),
		MaxBodyBytes:    c.MayInt64("MAX_BODY_BYTES", webhookhttp.DefaultMaxBody),
		PushConcurrency: c.MayInt("PUSH_CONCURRENCY", 1),
		Dedupe:          c.MayBool("DEDUPE", false),
		CommitStats:     c.MayBool("COMMIT_STATS", false),
		StatsTimeout:    c.MayDuration("COMMIT_STATS_TIMEOUT", service.DefaultStatsTimeout),
	}
}
