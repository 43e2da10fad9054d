package modkit

import (
	"workmonitor/internal/modkit/repokit"
	"workmonitor/internal/platform/config"
	"workmonitor/internal/platform/logger"
	"workmonitor/internal/platform/store"
)

// Deps holds the shared dependencies handed to every module
// CH is nil unless the clickhouse mirror is enabled
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}
