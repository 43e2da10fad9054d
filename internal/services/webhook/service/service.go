// Package service dispatches webhook deliveries to the normalizers and stores what they produce
package service

import (
	"context"
	"time"

	"workmonitor/internal/adapters/ingest/githook"
	"workmonitor/internal/adapters/ingest/github"
	"workmonitor/internal/platform/logger"
	ptime "workmonitor/internal/platform/time"
	activity "workmonitor/internal/services/activity/domain"
	users "workmonitor/internal/services/users/domain"
	"workmonitor/internal/services/webhook/domain"

	"golang.org/x/sync/errgroup"
)

// Config holds the opt-in behaviours, the zero value stores every delivery sequentially
type Config struct {
	// Dedupe stores a draft only once per external key
	Dedupe bool
	// PushConcurrency bounds per commit work within one push, 1 or less is sequential
	PushConcurrency int
	// StatsTimeout bounds each commit stats lookup, 0 means DefaultStatsTimeout
	StatsTimeout time.Duration
}

// DefaultStatsTimeout bounds a commit stats lookup when Config leaves it unset
const DefaultStatsTimeout = 2 * time.Second

// Svc implements domain.DispatcherPort
type Svc struct {
	users users.ResolverPort
	store activity.WriterPort
	stats domain.CommitStatsPort
	cfg   Config
}

var _ domain.DispatcherPort = (*Svc)(nil)

// Option configures Svc
type Option func(*Svc)

// WithCommitStats replaces the file count approximation of push additions and deletions with looked up line stats
func WithCommitStats(p domain.CommitStatsPort) Option { return func(s *Svc) { s.stats = p } }

// New constructs the dispatcher
func New(resolver users.ResolverPort, store activity.WriterPort, cfg Config, opts ...Option) *Svc {
	if resolver == nil {
		panic("webhook.Service requires a non nil user resolver")
	}
	if store == nil {
		panic("webhook.Service requires a non nil activity writer")
	}
	s := &Svc{users: resolver, store: store, cfg: cfg}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Dispatch decodes d by its event type and runs the matching normalizer
// unknown event types are ignored, payload schema violations are validation errors
func (s *Svc) Dispatch(ctx context.Context, d domain.Delivery) (domain.Result, error) {
	res := domain.Result{Event: d.Event}
	now := ptime.Now()

	var (
		drafts []pending
		err    error
	)
	switch d.Event {
	case githook.EventPing:
		ev, err := githook.DecodePing(d.Body)
		if err != nil {
			return res, err
		}
		l := logger.C(ctx).Info().Int64("hook_id", ev.HookID)
		if ev.Repository != nil {
			l = l.Str("repository", ev.Repository.FullName)
		}
		l.Msg("webhook ping")
		res.Outcome = domain.OutcomePong
		return res, nil

	case githook.EventPush:
		var ev githook.PushEvent
		if ev, err = githook.Decode[githook.PushEvent](d.Event, d.Body); err != nil {
			return res, err
		}
		drafts = pushDrafts(ev)

	case githook.EventPullRequest:
		ev, ok, err := decodeStored(d, pullRequestStored)
		if err != nil {
			return res, err
		}
		if ok {
			drafts = single(pullRequestDraft(ev, now))
		}

	case githook.EventReview:
		ev, ok, err := decodeStored(d, reviewStored)
		if err != nil {
			return res, err
		}
		if ok {
			drafts = single(reviewDraft(ev, now))
		}

	case githook.EventIssues:
		ev, ok, err := decodeStored(d, issueStored)
		if err != nil {
			return res, err
		}
		if ok {
			drafts = single(issueDraft(ev, now))
		}

	default:
		logger.C(ctx).Info().Msg("webhook event not handled")
		res.Outcome = domain.OutcomeIgnored
		return res, nil
	}

	res.Outcome = domain.OutcomeProcessed
	res.Records, res.Dropped, err = s.storeAll(ctx, drafts)
	return res, err
}

// decodeStored checks the action before the schema, so an action that stores nothing
// is accepted whatever else the payload holds
func decodeStored[T any](d domain.Delivery, stored func(T) bool) (T, bool, error) {
	ev, err := githook.Unmarshal[T](d.Event, d.Body)
	if err != nil || !stored(ev) {
		return ev, false, err
	}
	if err := githook.Validate(d.Event, ev); err != nil {
		return ev, false, err
	}
	return ev, true, nil
}

func single(p pending, ok bool) []pending {
	if !ok {
		return nil
	}
	return []pending{p}
}

// storeAll resolves and stores drafts keeping payload order
// a failure stops the delivery, rows stored before it stay
func (s *Svc) storeAll(ctx context.Context, drafts []pending) ([]activity.Record, int, error) {
	slots := make([]*activity.Record, len(drafts))

	if s.cfg.PushConcurrency <= 1 || len(drafts) <= 1 {
		for i, p := range drafts {
			rec, err := s.storeOne(ctx, p)
			if err != nil {
				return compact(slots), dropped(slots[:i]), err
			}
			slots[i] = rec
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.PushConcurrency)
		for i, p := range drafts {
			g.Go(func() error {
				rec, err := s.storeOne(gctx, p)
				if err != nil {
					return err
				}
				slots[i] = rec
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return compact(slots), 0, err
		}
	}
	return compact(slots), dropped(slots), nil
}

// storeOne returns nil when the actor does not resolve
func (s *Svc) storeOne(ctx context.Context, p pending) (*activity.Record, error) {
	u, ok, err := s.users.Resolve(ctx, p.login)
	if err != nil {
		return nil, err
	}
	if !ok {
		logger.C(ctx).Debug().Str("login", p.login).Str("kind", string(p.draft.Kind)).Msg("actor not resolved, skipping")
		return nil, nil
	}
	d := p.draft
	d.UserID = u.ID

	if d.Kind == activity.KindCommit && s.stats != nil && d.SHA != nil {
		st, err := s.commitStats(ctx, d.Repository, *d.SHA)
		if err != nil {
			logger.C(ctx).Warn().Err(err).Str("sha", *d.SHA).Msg("commit stats lookup failed, keeping file counts")
		} else {
			d.Additions, d.Deletions = st.Additions, st.Deletions
		}
	}

	var rec activity.Record
	if s.cfg.Dedupe {
		rec, _, err = s.store.RecordOnce(ctx, d)
	} else {
		rec, err = s.store.Record(ctx, d)
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// commitStats bounds the lookup by StatsTimeout, ctx itself stays intact for the insert
func (s *Svc) commitStats(ctx context.Context, repo, sha string) (github.CommitStats, error) {
	timeout := s.cfg.StatsTimeout
	if timeout <= 0 {
		timeout = DefaultStatsTimeout
	}
	sctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.stats.CommitStats(sctx, repo, sha)
}

func compact(slots []*activity.Record) []activity.Record {
	out := make([]activity.Record, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}

func dropped(slots []*activity.Record) int {
	n := 0
	for _, r := range slots {
		if r == nil {
			n++
		}
	}
	return n
}
