package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "workmonitor/internal/platform/errors"
	phttp "workmonitor/internal/platform/net/http"
	"workmonitor/internal/platform/testkit"
	"workmonitor/internal/services/users/domain"

	"github.com/go-chi/chi/v5"
)

type fakeAdmin struct {
	listed  domain.ListInput
	gotID   string
	update  *domain.UpdateInput
	err     error
	updates int
}

func (f *fakeAdmin) List(_ context.Context, in domain.ListInput) ([]domain.User, error) {
	f.listed = in
	return []domain.User{{ID: "u1", Name: "Ada", GithubUsername: "ada"}}, f.err
}

func (f *fakeAdmin) Get(_ context.Context, id string) (domain.User, error) {
	f.gotID = id
	if f.err != nil {
		return domain.User{}, f.err
	}
	return domain.User{ID: id, Name: "Ada"}, nil
}

func (f *fakeAdmin) UpdateGithubUsername(_ context.Context, id string, in domain.UpdateInput) (domain.User, error) {
	f.updates++
	f.gotID = id
	f.update = &in
	if f.err != nil {
		return domain.User{}, f.err
	}
	u := domain.User{ID: id, Name: "Ada"}
	if in.GithubUsername != nil {
		u.GithubUsername = *in.GithubUsername
	}
	return u, nil
}

func newRouter(port domain.AdminPort) stdhttp.Handler {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	r.Route("/users", func(sub phttp.Router) { Register(sub, port) })
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

func TestListUsers(t *testing.T) {
	f := &fakeAdmin{}
	rec := do(t, newRouter(f), stdhttp.MethodGet, "/users?search=ad&limit=1000&offset=5", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if f.listed.Search != "ad" || f.listed.Limit != 1000 || f.listed.Offset != 5 {
		t.Fatalf("input = %+v", f.listed)
	}
	testkit.MustContain(t, rec.Body.String(), `"githubUsername":"ada"`)
}

func TestListUsersRejectsBadQuery(t *testing.T) {
	for _, target := range []string{"/users?limit=x", "/users?offset=-1", "/users?limit=-2"} {
		rec := do(t, newRouter(&fakeAdmin{}), stdhttp.MethodGet, target, "")
		if rec.Code != stdhttp.StatusBadRequest {
			t.Fatalf("%s status = %d", target, rec.Code)
		}
	}
}

func TestGetUser(t *testing.T) {
	f := &fakeAdmin{}
	rec := do(t, newRouter(f), stdhttp.MethodGet, "/users/u7", "")
	if rec.Code != stdhttp.StatusOK || f.gotID != "u7" {
		t.Fatalf("status = %d id = %q", rec.Code, f.gotID)
	}

	f.err = perr.NotFoundf("user u7 not found")
	if rec := do(t, newRouter(f), stdhttp.MethodGet, "/users/u7", ""); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("missing user status = %d", rec.Code)
	}
}

func TestPatchSetsGithubUsername(t *testing.T) {
	f := &fakeAdmin{}
	rec := do(t, newRouter(f), stdhttp.MethodPatch, "/users/u1", `{"githubUsername":"octo-cat"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if f.gotID != "u1" || f.update == nil || f.update.GithubUsername == nil || *f.update.GithubUsername != "octo-cat" {
		t.Fatalf("service saw id=%q in=%+v", f.gotID, f.update)
	}
	testkit.MustContain(t, rec.Body.String(), `"githubUsername":"octo-cat"`)
}

func TestPatchNullClears(t *testing.T) {
	f := &fakeAdmin{}
	rec := do(t, newRouter(f), stdhttp.MethodPatch, "/users/u1", `{"githubUsername":null}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if f.update == nil || f.update.GithubUsername != nil {
		t.Fatalf("want nil login, got %+v", f.update)
	}
}

func TestPatchRejectsBadBodies(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not a login", `{"githubUsername":"ada lovelace"}`},
		{"too long", `{"githubUsername":"` + strings.Repeat("a", 40) + `"}`},
		{"password is not editable", `{"githubUsername":"ada","password":"hunter2"}`},
		{"not json", `githubUsername=ada`},
		{"empty", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeAdmin{}
			rec := do(t, newRouter(f), stdhttp.MethodPatch, "/users/u1", tc.body)
			if rec.Code != stdhttp.StatusBadRequest {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			if f.updates != 0 {
				t.Fatalf("service called for a bad body")
			}
		})
	}
}

func TestPatchConflictAndNotFound(t *testing.T) {
	for code, want := range map[perr.ErrorCode]int{
		perr.ErrorCodeConflict: stdhttp.StatusConflict,
		perr.ErrorCodeNotFound: stdhttp.StatusNotFound,
	} {
		f := &fakeAdmin{err: perr.New(code, "nope")}
		rec := do(t, newRouter(f), stdhttp.MethodPatch, "/users/u1", `{"githubUsername":"ada"}`)
		if rec.Code != want {
			t.Fatalf("code %v status = %d, want %d", code, rec.Code, want)
		}
	}
}
