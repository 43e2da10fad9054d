// Package domain holds the webhook delivery, dispatch result and the ports dispatch depends on
package domain

import (
	"context"

	"workmonitor/internal/adapters/ingest/githook"
	"workmonitor/internal/adapters/ingest/github"
	activity "workmonitor/internal/services/activity/domain"
)

// Delivery is one webhook POST
// Body is the exact bytes received
type Delivery struct {
	Event string
	ID    string
	Body  []byte
}

// Outcome classifies what dispatch did with a delivery
type Outcome int

const (
	// OutcomeProcessed means a normalizer ran, it may have stored nothing
	OutcomeProcessed Outcome = iota
	// OutcomePong acknowledges a ping
	OutcomePong
	// OutcomeIgnored means the event type has no normalizer
	OutcomeIgnored
)

// Result is the dispatch result of one delivery
type Result struct {
	Outcome Outcome
	Event   string

	// Records holds what was stored, in payload order
	Records []activity.Record
	// Dropped counts drafts whose actor did not resolve
	Dropped int
}

// Payload is the response form of Records
// push answers with a list, the other events with one record or null
func (r Result) Payload() any {
	if r.Event == githook.EventPush {
		if r.Records == nil {
			return []activity.Record{}
		}
		return r.Records
	}
	if len(r.Records) == 0 {
		return nil
	}
	return r.Records[0]
}

// DispatcherPort routes a delivery to its normalizer
type DispatcherPort interface {
	Dispatch(ctx context.Context, d Delivery) (Result, error)
}

// CommitStatsPort looks up line level diff stats for a pushed commit
type CommitStatsPort interface {
	CommitStats(ctx context.Context, repo, sha string) (github.CommitStats, error)
}
