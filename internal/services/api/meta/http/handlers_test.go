package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "workmonitor/internal/platform/net/http"
	"workmonitor/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func serve(t *testing.T, d Deps, path string) map[string]any {
	t.Helper()
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/meta", func(sub phttp.Router) { Register(sub, d) })

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("%s status = %d body=%s", path, rec.Code, rec.Body.String())
	}
	env := testkit.DecodeMap(t, rec.Body.Bytes())
	data, ok := env["data"].(map[string]any)
	if !ok {
		t.Fatalf("%s has no data: %s", path, rec.Body.String())
	}
	return data
}

func TestHealthAndService(t *testing.T) {
	d := Deps{ServiceName: "workmonitor-api", StartedAt: time.Now().Add(-time.Minute)}

	h := serve(t, d, "/meta/health")
	if h["ok"] != true || h["service"] != "workmonitor-api" {
		t.Fatalf("health = %v", h)
	}

	s := serve(t, d, "/meta/service")
	if up, _ := s["uptime"].(float64); up < 59 {
		t.Fatalf("uptime = %v", s["uptime"])
	}
}

func TestVersionNamesService(t *testing.T) {
	v := serve(t, Deps{ServiceName: "workmonitor-api"}, "/meta/version")
	if v["service"] != "workmonitor-api" || v["version"] == "" {
		t.Fatalf("version = %v", v)
	}
}

func TestReadyStatus(t *testing.T) {
	cases := []struct {
		name string
		pg   any
		ch   any
		want string
	}{
		{"pg ok ch skipped", pinger{}, nil, "ok"},
		{"both ok", pinger{}, pinger{}, "ok"},
		{"pg down", pinger{err: errors.New("refused")}, nil, "fail"},
		{"ch down", pinger{}, pinger{err: errors.New("refused")}, "fail"},
		{"pg missing", nil, nil, "degraded"},
		{"pg not a pinger", struct{}{}, nil, "degraded"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := serve(t, Deps{PG: tc.pg, CH: tc.ch}, "/meta/ready")
			if got["status"] != tc.want {
				t.Fatalf("status = %v want %s (%v)", got["status"], tc.want, got["checks"])
			}
		})
	}
}
