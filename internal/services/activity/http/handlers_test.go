package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "workmonitor/internal/platform/net/http"
	"workmonitor/internal/platform/testkit"
	"workmonitor/internal/services/activity/domain"

	"github.com/go-chi/chi/v5"
)

type fakeQuery struct {
	got   domain.ListInput
	calls int
}

func (f *fakeQuery) List(_ context.Context, in domain.ListInput) (domain.Page, error) {
	f.calls++
	f.got = in
	return domain.Page{Items: []domain.Record{{ID: "a1", Type: domain.KindCommit}}, Pagination: domain.Pagination{Total: 1, Limit: 100}}, nil
}

func (f *fakeQuery) Stats(context.Context) (domain.Stats, error) {
	return domain.Stats{Today: domain.TodayStats{Commits: 2, Total: 2}, Recent: []domain.Record{}}, nil
}

func newRouter(q domain.QueryPort) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/activities", func(sub phttp.Router) { Register(sub, q) })
	return mux
}

func do(t *testing.T, h stdhttp.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestListParsesQuery(t *testing.T) {
	q := &fakeQuery{}
	rec := do(t, newRouter(q), stdhttp.MethodGet, "/activities?type=MERGE&repository=widgets&limit=20&offset=40&startDate=2026-10-01", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if q.got.Type != "MERGE" || q.got.Repository != "widgets" || q.got.Limit != 20 || q.got.Offset != 40 || q.got.StartDate != "2026-10-01" {
		t.Fatalf("input = %+v", q.got)
	}
	testkit.MustContain(t, rec.Body.String(), `"items":[{"id":"a1"`)
}

func TestListPassesLargeLimit(t *testing.T) {
	q := &fakeQuery{}
	rec := do(t, newRouter(q), stdhttp.MethodGet, "/activities?limit=5000", "")
	if rec.Code != stdhttp.StatusOK || q.got.Limit != 5000 {
		t.Fatalf("status = %d limit = %d", rec.Code, q.got.Limit)
	}
}

func TestListRejectsBadQuery(t *testing.T) {
	for _, target := range []string{
		"/activities?limit=abc",
		"/activities?limit=-3",
		"/activities?type=PUSH",
		"/activities?offset=-1",
		"/activities?endDate=tomorrow",
	} {
		q := &fakeQuery{}
		rec := do(t, newRouter(q), stdhttp.MethodGet, target, "")
		if rec.Code != stdhttp.StatusBadRequest {
			t.Fatalf("%s: status = %d body=%s", target, rec.Code, rec.Body.String())
		}
		if q.calls != 0 {
			t.Fatalf("%s: service should not be called", target)
		}
	}
}

func TestSearchBindsBody(t *testing.T) {
	q := &fakeQuery{}
	rec := do(t, newRouter(q), stdhttp.MethodPost, "/activities/search", `{"userId":"u1","limit":5}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if q.got.UserID != "u1" || q.got.Limit != 5 {
		t.Fatalf("input = %+v", q.got)
	}

	rec = do(t, newRouter(q), stdhttp.MethodPost, "/activities/search", `{"bogus":1}`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("unknown field status = %d", rec.Code)
	}
}

func TestStatsEnvelope(t *testing.T) {
	rec := do(t, newRouter(&fakeQuery{}), stdhttp.MethodGet, "/activities/stats", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := testkit.DecodeMap(t, rec.Body.Bytes())
	data, _ := body["data"].(map[string]any)
	today, _ := data["today"].(map[string]any)
	if today["commits"] != float64(2) {
		t.Fatalf("body = %v", body)
	}
}
