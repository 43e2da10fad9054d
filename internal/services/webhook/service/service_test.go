package service_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"workmonitor/internal/adapters/ingest/github"
	perr "workmonitor/internal/platform/errors"
	ptime "workmonitor/internal/platform/time"
	"workmonitor/internal/platform/testkit"
	activity "workmonitor/internal/services/activity/domain"
	users "workmonitor/internal/services/users/domain"
	"workmonitor/internal/services/webhook/domain"
	"workmonitor/internal/services/webhook/service"
)

type fakeUsers struct {
	known map[string]string
	err   error

	mu      sync.Mutex
	lookups []string
}

func (f *fakeUsers) Resolve(_ context.Context, login string) (users.User, bool, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, login)
	f.mu.Unlock()
	if f.err != nil {
		return users.User{}, false, f.err
	}
	id, ok := f.known[login]
	return users.User{ID: id, GithubUsername: login}, ok, nil
}

type fakeWriter struct {
	// failOn is the 1 based insert that fails, 0 never fails
	failOn int

	mu      sync.Mutex
	drafts  []activity.Draft
	keys    map[string]activity.Record
	inserts int
	once    int
}

// Record fails on a done context the way a pgx query does
func (f *fakeWriter) Record(ctx context.Context, d activity.Draft) (activity.Record, error) {
	if err := ctx.Err(); err != nil {
		return activity.Record{}, perr.Wrap(err, perr.ErrorCodeDB, "insert cancelled")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	if f.failOn > 0 && f.inserts == f.failOn {
		return activity.Record{}, perr.New(perr.ErrorCodeDB, "insert failed")
	}
	f.drafts = append(f.drafts, d)
	return activity.Record{ID: d.ExternalKey, Type: d.Kind, Title: d.Title, UserID: d.UserID, SHA: d.SHA, Additions: d.Additions, Deletions: d.Deletions}, nil
}

func (f *fakeWriter) RecordOnce(ctx context.Context, d activity.Draft) (activity.Record, bool, error) {
	f.mu.Lock()
	f.once++
	if d.ExternalKey == "" {
		f.mu.Unlock()
		rec, err := f.Record(ctx, d)
		return rec, err == nil, err
	}
	if rec, ok := f.keys[d.ExternalKey]; ok {
		f.mu.Unlock()
		return rec, false, nil
	}
	f.mu.Unlock()
	rec, err := f.Record(ctx, d)
	if err != nil {
		return rec, false, err
	}
	f.mu.Lock()
	if f.keys == nil {
		f.keys = map[string]activity.Record{}
	}
	f.keys[d.ExternalKey] = rec
	f.mu.Unlock()
	return rec, true, nil
}

type fakeStats struct {
	stats map[string]github.CommitStats
}

func (f *fakeStats) CommitStats(_ context.Context, _ string, sha string) (github.CommitStats, error) {
	st, ok := f.stats[sha]
	if !ok {
		return github.CommitStats{}, perr.NotFoundf("commit %s", sha)
	}
	return st, nil
}

func delivery(t *testing.T, event, fixture string) domain.Delivery {
	return domain.Delivery{Event: event, ID: "d-1", Body: testkit.Fixture(t, fixture)}
}

func adaOnly() *fakeUsers { return &fakeUsers{known: map[string]string{"ada": "u-ada"}} }

func TestPushKeepsResolvableCommitsInOrder(t *testing.T) {
	w := &fakeWriter{}
	svc := service.New(adaOnly(), w, service.Config{})

	res, err := svc.Dispatch(context.Background(), delivery(t, "push", "push.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.Outcome != domain.OutcomeProcessed || len(res.Records) != 2 || res.Dropped != 1 {
		t.Fatalf("result = %+v", res)
	}
	if *res.Records[0].SHA != "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678" || *res.Records[1].SHA != "c3d4e5f60718293a4b5c6d7e8f9012345678abcd" {
		t.Fatalf("order not preserved")
	}
	for _, r := range res.Records {
		if r.UserID != "u-ada" {
			t.Fatalf("user = %q", r.UserID)
		}
	}
	if _, ok := res.Payload().([]activity.Record); !ok {
		t.Fatalf("push payload should be a list")
	}
}

func TestPushConcurrentKeepsOrder(t *testing.T) {
	w := &fakeWriter{}
	svc := service.New(adaOnly(), w, service.Config{PushConcurrency: 4})

	res, err := svc.Dispatch(context.Background(), delivery(t, "push", "push.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(res.Records) != 2 || *res.Records[0].SHA != "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678" {
		t.Fatalf("records = %+v", res.Records)
	}
}

func TestPushStorageFailureStopsDelivery(t *testing.T) {
	w := &fakeWriter{failOn: 2}
	svc := service.New(adaOnly(), w, service.Config{})

	res, err := svc.Dispatch(context.Background(), delivery(t, "push", "push.json"))
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("want db error, got %v", err)
	}
	if len(w.drafts) != 1 || len(res.Records) != 1 {
		t.Fatalf("first commit should stay stored, drafts=%d records=%d", len(w.drafts), len(res.Records))
	}
}

func TestPushNoResolvableUsers(t *testing.T) {
	res, err := service.New(&fakeUsers{}, &fakeWriter{}, service.Config{}).
		Dispatch(context.Background(), delivery(t, "push", "push.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	recs, ok := res.Payload().([]activity.Record)
	if !ok || recs == nil || len(recs) != 0 {
		t.Fatalf("want empty list, got %#v", res.Payload())
	}
}

func TestRedeliveryDuplicatesByDefault(t *testing.T) {
	w := &fakeWriter{}
	svc := service.New(adaOnly(), w, service.Config{})
	for i := 0; i < 2; i++ {
		if _, err := svc.Dispatch(context.Background(), delivery(t, "push", "push.json")); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}
	if len(w.drafts) != 4 {
		t.Fatalf("want 4 stored commits, got %d", len(w.drafts))
	}
}

func TestRedeliveryWithDedupe(t *testing.T) {
	w := &fakeWriter{}
	svc := service.New(adaOnly(), w, service.Config{Dedupe: true})
	for i := 0; i < 2; i++ {
		res, err := svc.Dispatch(context.Background(), delivery(t, "push", "push.json"))
		if err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
		if len(res.Records) != 2 {
			t.Fatalf("each delivery reports its records, got %d", len(res.Records))
		}
	}
	if len(w.drafts) != 2 || w.once != 4 {
		t.Fatalf("drafts=%d once=%d", len(w.drafts), w.once)
	}
}

func TestCommitStatsOverrideFileCounts(t *testing.T) {
	w := &fakeWriter{}
	stats := &fakeStats{stats: map[string]github.CommitStats{
		"a1b2c3d4e5f60718293a4b5c6d7e8f9012345678": {Additions: 40, Deletions: 7, Total: 47},
	}}
	svc := service.New(adaOnly(), w, service.Config{}, service.WithCommitStats(stats))

	res, err := svc.Dispatch(context.Background(), delivery(t, "push", "push.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if res.Records[0].Additions != 40 || res.Records[0].Deletions != 7 {
		t.Fatalf("first commit should use looked up stats: %+v", res.Records[0])
	}
	if res.Records[1].Additions != 2 || res.Records[1].Deletions != 0 {
		t.Fatalf("failed lookup should keep file counts: %+v", res.Records[1])
	}
}

// blockingStats never answers before its context ends
type blockingStats struct{ deadline bool }

func (b *blockingStats) CommitStats(ctx context.Context, _, _ string) (github.CommitStats, error) {
	_, b.deadline = ctx.Deadline()
	<-ctx.Done()
	return github.CommitStats{}, ctx.Err()
}

func TestSlowCommitStatsKeepFileCounts(t *testing.T) {
	w := &fakeWriter{}
	stats := &blockingStats{}
	svc := service.New(adaOnly(), w, service.Config{StatsTimeout: 20 * time.Millisecond}, service.WithCommitStats(stats))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := svc.Dispatch(ctx, delivery(t, "push", "push.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !stats.deadline {
		t.Fatalf("stats lookup ran without its own deadline")
	}
	if len(res.Records) != 2 || res.Records[0].Additions != 3 || res.Records[0].Deletions != 1 {
		t.Fatalf("records = %+v", res.Records)
	}
}

func TestExhaustedGithubQuotaStillStores(t *testing.T) {
	reset := time.Now().Add(time.Hour).Unix()
	srv := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.Header().Set("X-RateLimit-Remaining", "0")
		rw.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset, 10))
		rw.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	w := &fakeWriter{}
	gh := github.NewClient(github.Options{BaseURL: srv.URL})
	svc := service.New(adaOnly(), w, service.Config{}, service.WithCommitStats(gh))

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	res, err := svc.Dispatch(ctx, delivery(t, "push", "push.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if len(res.Records) != 2 || len(w.drafts) != 2 {
		t.Fatalf("stored %d records, want 2", len(w.drafts))
	}
}

func TestPullRequestMergedDispatch(t *testing.T) {
	testkit.Serial(t)
	now := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	testkit.Swap(t, &ptime.Now, func() time.Time { return now })

	w := &fakeWriter{}
	res, err := service.New(adaOnly(), w, service.Config{}).
		Dispatch(context.Background(), delivery(t, "pull_request", "pull_request.json"))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	rec, ok := res.Payload().(activity.Record)
	if !ok || rec.Type != activity.KindMerge {
		t.Fatalf("payload = %#v", res.Payload())
	}
	if !w.drafts[0].Timestamp.Equal(now) {
		t.Fatalf("timestamp = %v, want ingestion time", w.drafts[0].Timestamp)
	}
}

func TestSingleEventUnresolvedIsNull(t *testing.T) {
	for event, fixture := range map[string]string{
		"pull_request":        "pull_request.json",
		"pull_request_review": "pull_request_review.json",
		"issues":              "issues.json",
	} {
		res, err := service.New(&fakeUsers{}, &fakeWriter{}, service.Config{}).
			Dispatch(context.Background(), delivery(t, event, fixture))
		if err != nil {
			t.Fatalf("%s: %v", event, err)
		}
		if res.Outcome != domain.OutcomeProcessed || res.Payload() != nil {
			t.Fatalf("%s: want processed with null result, got %+v", event, res)
		}
	}
}

func TestIgnoredActionSkipsLookup(t *testing.T) {
	u := adaOnly()
	body := []byte(`{"action":"labeled","number":42,"pull_request":{"title":"x"},"repository":{"full_name":"acme/widgets"},"sender":{"login":"ada"}}`)
	res, err := service.New(u, &fakeWriter{}, service.Config{}).
		Dispatch(context.Background(), domain.Delivery{Event: "pull_request", Body: body})
	if err != nil || res.Payload() != nil {
		t.Fatalf("res=%+v err=%v", res, err)
	}
	if len(u.lookups) != 0 {
		t.Fatalf("ignored action should not resolve users, got %v", u.lookups)
	}
}

func TestIgnoredActionSkipsSchemaCheck(t *testing.T) {
	svc := service.New(adaOnly(), &fakeWriter{}, service.Config{})
	cases := []struct{ event, body string }{
		{"pull_request", `{"action":"labeled","number":0}`},
		{"pull_request_review", `{"action":"dismissed","pull_request":{}}`},
		{"issues", `{"action":"assigned","issue":{}}`},
		{"issues", `{}`},
	}
	for _, tc := range cases {
		res, err := svc.Dispatch(context.Background(), domain.Delivery{Event: tc.event, Body: []byte(tc.body)})
		if err != nil {
			t.Fatalf("%s %s: %v", tc.event, tc.body, err)
		}
		if res.Outcome != domain.OutcomeProcessed || res.Payload() != nil {
			t.Fatalf("%s: %+v", tc.event, res)
		}
	}
}

func TestStoredActionStillValidated(t *testing.T) {
	svc := service.New(adaOnly(), &fakeWriter{}, service.Config{})
	body := []byte(`{"action":"opened","number":0,"sender":{"login":"ada"}}`)
	_, err := svc.Dispatch(context.Background(), domain.Delivery{Event: "pull_request", Body: body})
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("err = %v", err)
	}
}

func TestDedupeKeepsReviewsWithoutID(t *testing.T) {
	w := &fakeWriter{}
	svc := service.New(adaOnly(), w, service.Config{Dedupe: true})
	body := []byte(`{"action":"submitted","review":{"state":"approved"},"pull_request":{"number":3,"title":"t"},"repository":{"full_name":"acme/widgets"},"sender":{"login":"ada"}}`)
	for range 2 {
		if _, err := svc.Dispatch(context.Background(), domain.Delivery{Event: "pull_request_review", Body: body}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}
	if len(w.drafts) != 2 {
		t.Fatalf("stored %d reviews, want 2", len(w.drafts))
	}
}

func TestPingAndUnknownEvents(t *testing.T) {
	svc := service.New(adaOnly(), &fakeWriter{}, service.Config{})

	res, err := svc.Dispatch(context.Background(), delivery(t, "ping", "ping.json"))
	if err != nil || res.Outcome != domain.OutcomePong {
		t.Fatalf("ping: %+v %v", res, err)
	}
	res, err = svc.Dispatch(context.Background(), domain.Delivery{Event: "ping", Body: []byte(`{}`)})
	if err != nil || res.Outcome != domain.OutcomePong {
		t.Fatalf("bare ping: %+v %v", res, err)
	}
	res, err = svc.Dispatch(context.Background(), domain.Delivery{Event: "workflow_run", Body: []byte(`{"anything":1}`)})
	if err != nil || res.Outcome != domain.OutcomeIgnored {
		t.Fatalf("unknown: %+v %v", res, err)
	}
}

func TestSchemaViolationIsValidationError(t *testing.T) {
	svc := service.New(adaOnly(), &fakeWriter{}, service.Config{})
	for event, body := range map[string]string{
		"push":         `{"commits":[]}`,
		"pull_request": `{"action":"opened","number":"seven"}`,
		"issues":       `[]`,
	} {
		_, err := svc.Dispatch(context.Background(), domain.Delivery{Event: event, Body: []byte(body)})
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("%s: want validation error, got %v", event, err)
		}
		testkit.MustContain(t, err.Error(), "Invalid "+event+" payload")
	}
}

func TestResolverErrorPropagates(t *testing.T) {
	boom := errors.New("db gone")
	_, err := service.New(&fakeUsers{err: boom}, &fakeWriter{}, service.Config{}).
		Dispatch(context.Background(), delivery(t, "issues", "issues.json"))
	if !errors.Is(err, boom) {
		t.Fatalf("want resolver error, got %v", err)
	}
}

func TestNewPanicsOnNilPorts(t *testing.T) {
	testkit.MustPanic(t, func() { service.New(nil, &fakeWriter{}, service.Config{}) })
	testkit.MustPanic(t, func() { service.New(adaOnly(), nil, service.Config{}) })
}
