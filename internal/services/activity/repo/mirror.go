package repo

import (
	"context"

	"workmonitor/internal/platform/store"
	"workmonitor/internal/services/activity/domain"
)

// MirrorTable is the clickhouse table stored activity is appended to
const MirrorTable = "activity_events"

// CH appends activity rows to clickhouse
type CH struct{ ch store.Clickhouse }

var _ domain.MirrorPort = (*CH)(nil)

// NewMirror returns a clickhouse mirror, nil when ch is nil
func NewMirror(ch store.Clickhouse) domain.MirrorPort {
	if ch == nil {
		return nil
	}
	return &CH{ch: ch}
}

// Append inserts recs as one batch in activity_events column order
func (m *CH) Append(ctx context.Context, recs ...domain.Record) error {
	rows := make([][]any, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []any{
			r.ID, string(r.Type), r.Repository, r.UserID,
			int32(r.Additions), int32(r.Deletions), r.Timestamp.UTC(),
		})
	}
	return m.ch.Insert(ctx, MirrorTable, rows)
}
