package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workmonitor/internal/platform/config"

	"github.com/go-chi/chi/v5"
)

func TestNewServerAddr(t *testing.T) {
	t.Setenv("T_API_PORT", "8081")
	s := NewServer(config.New().Prefix("T_API_"))
	if s.Addr() != ":8081" {
		t.Fatalf("Addr = %q", s.Addr())
	}
	if NewServer(config.New().Prefix("T_NONE_")).Addr() != ":4000" {
		t.Fatalf("default addr should be :4000")
	}
}

func TestRouterFacadeRoutesAndGroups(t *testing.T) {
	used := 0
	s := NewServer(config.New().Prefix("T_R_"), func(m *chi.Mux) {
		m.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
				used++
				next.ServeHTTP(w, r)
			})
		})
	})
	r := s.Router()
	r.Route("/api", func(api Router) {
		api.Group(func(g Router) {
			g.Get("/ping", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(204) })
		})
		api.Post("/echo", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.WriteHeader(201) })
	})

	for _, tc := range []struct {
		method, path string
		want         int
	}{
		{stdhttp.MethodGet, "/api/ping", 204},
		{stdhttp.MethodPost, "/api/echo", 201},
		{stdhttp.MethodGet, "/api/echo", 405},
		{stdhttp.MethodGet, "/nope", 404},
	} {
		rr := httptest.NewRecorder()
		s.Handler().ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
	if used != 4 {
		t.Fatalf("root middleware ran %d times", used)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Setenv("T_RUN_PORT", "127.0.0.1:0")
	s := NewServer(config.New().Prefix("T_RUN_"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop")
	}
}

func TestMountProfilerDisabled(t *testing.T) {
	s := NewServer(config.New().Prefix("T_P_"))
	MountProfiler(s.Router(), "/debug", false)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rr.Code != 404 {
		t.Fatalf("profiler should not be mounted, got %d", rr.Code)
	}
}
