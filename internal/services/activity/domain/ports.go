package domain

import (
	"context"
	"time"
)

// WriterPort stores normalized activity
type WriterPort interface {
	// Record stores d as a new row, identical drafts produce identical rows
	Record(ctx context.Context, d Draft) (Record, error)
	// RecordOnce stores d unless a row with d.ExternalKey exists, in which case that row is returned
	RecordOnce(ctx context.Context, d Draft) (rec Record, created bool, err error)
}

// QueryPort serves the read API
type QueryPort interface {
	List(ctx context.Context, in ListInput) (Page, error)
	Stats(ctx context.Context) (Stats, error)
}

// Filter is a parsed ListInput, Start and End are inclusive
type Filter struct {
	Type       Kind
	UserID     string
	Repository string
	CategoryID string
	Start      *time.Time
	End        *time.Time
	Limit      int
	Offset     int
}

// Repo is the persistence surface for activity
type Repo interface {
	Insert(ctx context.Context, id string, d Draft) (Record, error)
	ByExternalKey(ctx context.Context, key string) (Record, error)
	// LockKey takes a transaction scoped advisory lock on key
	LockKey(ctx context.Context, key string) error
	List(ctx context.Context, f Filter) ([]Record, error)
	Count(ctx context.Context, f Filter) (int64, error)
	CountByType(ctx context.Context, since time.Time) (map[Kind]int64, error)
}

// MirrorPort appends stored records to the analytics store
type MirrorPort interface {
	Append(ctx context.Context, recs ...Record) error
}
