package store

import (
	"time"

	"workmonitor/internal/platform/config"
)

// Config aggregates per backend configuration
type Config struct {
	AppName string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // ping attempts before giving up, default 20
	PingTimeout    time.Duration // per attempt, default 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled bool
	URL     string
	Role    string // reported in client info, for example api
}

// ConfigFromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*
// postgres is required, clickhouse only when SERVICE_CLICKHOUSE_ENABLED is set
func ConfigFromEnv(appName string) Config {
	pg := config.New().Prefix("SERVICE_PGSQL_")
	ch := config.New().Prefix("SERVICE_CLICKHOUSE_")

	cfg := Config{
		AppName: appName,
		PG: PGConfig{
			Enabled:        true,
			URL:            pg.MustString("DBURL"),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 10)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 250),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: ch.MayBool("ENABLED", false),
			Role:    appName,
		},
	}
	if cfg.CH.Enabled {
		cfg.CH.URL = ch.MustString("DBURL")
	}
	return cfg
}
