package pg

import (
	"context"
	"strings"

	"workmonitor/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent describes one executed statement
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer receives every statement when SQL logging is on
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer logs statements at debug, slow ones at warn and failures at error
// the level is forced to debug since enabling SQL logging is an explicit opt in
func Tracer(root logger.Logger) QueryTracer {
	return &zlTracer{log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger()}
}

type zlTracer struct{ log logger.Logger }

func (z *zlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	log := z.log
	evt := log.Debug()
	switch {
	case ev.Err != nil:
		evt = log.Error().Err(ev.Err)
	case ev.Slow:
		evt = log.Warn()
	}
	evt.Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", compact(ev.SQL)).
		Interface("args", ev.Args).
		Msg("pg query")
}

// compact folds whitespace runs so multi line statements log on one line
func compact(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
