// Package service stores normalized activity and serves the activity read API
package service

import (
	"context"
	"strings"
	"time"

	"workmonitor/internal/modkit/repokit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/logger"
	pstrings "workmonitor/internal/platform/strings"
	ptime "workmonitor/internal/platform/time"
	"workmonitor/internal/services/activity/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Service is the activity service contract
type Service interface {
	domain.WriterPort
	domain.QueryPort
}

// Svc implements Service
type Svc struct {
	Repo   domain.Repo
	binder repokit.Binder[domain.Repo]
	db     repokit.TxRunner
	mirror domain.MirrorPort
	newID  func() (uuid.UUID, error)
}

var _ Service = (*Svc)(nil)

// Option configures Svc
type Option func(*Svc)

// WithMirror appends every stored record to m, failures are logged only
func WithMirror(m domain.MirrorPort) Option { return func(s *Svc) { s.mirror = m } }

// New constructs an activity service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo], opts ...Option) *Svc {
	if db == nil {
		panic("activity.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("activity.Service requires a non nil Repo binder")
	}
	s := &Svc{Repo: binder.Bind(db), binder: binder, db: db, newID: uuid.NewV7}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Record stores d as a new row
func (s *Svc) Record(ctx context.Context, d domain.Draft) (domain.Record, error) {
	d, err := prepare(d)
	if err != nil {
		return domain.Record{}, err
	}
	id, err := s.newID()
	if err != nil {
		return domain.Record{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "activity id")
	}
	rec, err := s.Repo.Insert(ctx, id.String(), d)
	if err != nil {
		return domain.Record{}, err
	}
	s.mirrorOne(ctx, rec)
	return rec, nil
}

// RecordOnce stores d unless a row with the same external key exists
// the key is locked for the transaction so concurrent deliveries of one event insert once
func (s *Svc) RecordOnce(ctx context.Context, d domain.Draft) (domain.Record, bool, error) {
	if strings.TrimSpace(d.ExternalKey) == "" {
		rec, err := s.Record(ctx, d)
		return rec, err == nil, err
	}
	d, err := prepare(d)
	if err != nil {
		return domain.Record{}, false, err
	}
	id, err := s.newID()
	if err != nil {
		return domain.Record{}, false, perr.Wrapf(err, perr.ErrorCodeUnknown, "activity id")
	}

	var (
		rec     domain.Record
		created bool
	)
	err = s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.LockKey(ctx, d.ExternalKey); err != nil {
			return err
		}
		existing, err := r.ByExternalKey(ctx, d.ExternalKey)
		switch {
		case err == nil:
			rec = existing
			return nil
		case !perr.IsCode(err, perr.ErrorCodeNotFound):
			return err
		}
		rec, err = r.Insert(ctx, id.String(), d)
		created = err == nil
		return err
	})
	if err != nil {
		return domain.Record{}, false, err
	}
	if created {
		s.mirrorOne(ctx, rec)
	} else {
		logger.C(ctx).Debug().Str("external_key", d.ExternalKey).Str("activity_id", rec.ID).Msg("activity already recorded")
	}
	return rec, created, nil
}

func prepare(d domain.Draft) (domain.Draft, error) {
	if !d.Kind.Valid() {
		return d, perr.Newf(perr.ErrorCodeInvalidArgument, "unknown activity kind %q", d.Kind)
	}
	if strings.TrimSpace(d.UserID) == "" {
		return d, perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, "activity needs a user"), "userId")
	}
	if strings.TrimSpace(d.Repository) == "" {
		return d, perr.WithField(perr.New(perr.ErrorCodeInvalidArgument, "activity needs a repository"), "repository")
	}
	d.Title = pstrings.Truncate(d.Title, domain.TitleMax)
	if d.Timestamp.IsZero() {
		d.Timestamp = ptime.Now()
	}
	return d, nil
}

func (s *Svc) mirrorOne(ctx context.Context, rec domain.Record) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Append(ctx, rec); err != nil {
		logger.C(ctx).Warn().Err(err).Str("activity_id", rec.ID).Msg("activity mirror append failed")
	}
}

// List returns one page of activity, newest first
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.Page, error) {
	f, err := filterFrom(in)
	if err != nil {
		return domain.Page{}, err
	}

	var (
		items []domain.Record
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.Repo.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Page{}, err
	}
	if items == nil {
		items = []domain.Record{}
	}
	return domain.Page{
		Items: items,
		Pagination: domain.Pagination{
			Total:   total,
			Limit:   f.Limit,
			Offset:  f.Offset,
			HasMore: int64(f.Offset+len(items)) < total,
		},
	}, nil
}

func filterFrom(in domain.ListInput) (domain.Filter, error) {
	f := domain.Filter{
		Type:       domain.Kind(in.Type),
		UserID:     strings.TrimSpace(in.UserID),
		Repository: strings.TrimSpace(in.Repository),
		CategoryID: strings.TrimSpace(in.CategoryID),
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	if f.Type != "" && !f.Type.Valid() {
		return f, perr.WithField(perr.New(perr.ErrorCodeValidation, "type must be one of COMMIT PULL_REQUEST REVIEW MERGE ISSUE"), "type")
	}
	if f.Limit <= 0 {
		f.Limit = domain.DefaultLimit
	}
	f.Limit = min(f.Limit, domain.MaxLimit)
	if f.Offset < 0 {
		f.Offset = 0
	}
	for _, d := range []struct {
		field string
		raw   string
		dst   **time.Time
	}{
		{"startDate", in.StartDate, &f.Start},
		{"endDate", in.EndDate, &f.End},
	} {
		if d.raw == "" {
			continue
		}
		t, err := ptime.ParseDate(d.raw)
		if err != nil {
			return f, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be an RFC3339 timestamp or YYYY-MM-DD", d.field), d.field)
		}
		*d.dst = &t
	}
	if f.Start != nil && f.End != nil && f.End.Before(*f.Start) {
		return f, perr.WithField(perr.New(perr.ErrorCodeValidation, "endDate must not be before startDate"), "endDate")
	}
	return f, nil
}

// Stats counts today's and this week's activity and returns the latest records
func (s *Svc) Stats(ctx context.Context) (domain.Stats, error) {
	now := ptime.Now()

	var (
		today, week map[domain.Kind]int64
		recent      []domain.Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = s.Repo.CountByType(gctx, ptime.StartOfDay(now))
		return err
	})
	g.Go(func() error {
		var err error
		week, err = s.Repo.CountByType(gctx, ptime.DaysAgo(now, 7))
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.Repo.List(gctx, domain.Filter{Limit: domain.RecentLimit})
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Stats{}, err
	}

	out := domain.Stats{
		Today: domain.TodayStats{
			Commits:      today[domain.KindCommit],
			PullRequests: today[domain.KindPullRequest],
			Reviews:      today[domain.KindReview],
			Merges:       today[domain.KindMerge],
		},
		Weekly: domain.WeeklyStats{Commits: week[domain.KindCommit], ByType: week},
		Recent: recent,
	}
	out.Today.Total = out.Today.Commits + out.Today.PullRequests + out.Today.Reviews + out.Today.Merges
	if out.Recent == nil {
		out.Recent = []domain.Record{}
	}
	return out, nil
}
