package bind

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "workmonitor/internal/platform/errors"
)

type search struct {
	Repository string `json:"repository" validate:"omitempty,max=10"`
	Limit      int    `json:"limit" validate:"min=1,max=500"`
	StartDate  string `json:"startDate" validate:"omitempty,datestr"`
}

func TestParseJSONSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"repository":"acme/web","limit":5}`))
	got, err := ParseJSON[search](req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Repository != "acme/web" || got.Limit != 5 {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSONFailures(t *testing.T) {
	cases := []struct {
		name string
		body string
		code perr.ErrorCode
	}{
		{"empty", ``, perr.ErrorCodeJSON},
		{"garbage", `{"limit":`, perr.ErrorCodeJSON},
		{"unknown field", `{"limit":1,"nope":true}`, perr.ErrorCodeJSON},
		{"trailing", `{"limit":1}{"limit":2}`, perr.ErrorCodeJSON},
		{"limit too big", `{"limit":501}`, perr.ErrorCodeValidation},
		{"bad date", `{"limit":1,"startDate":"yesterday"}`, perr.ErrorCodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))
			_, err := ParseJSON[search](req)
			if perr.CodeOf(err) != tc.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
		})
	}
}

func TestValidateTranslatesAndAttachesField(t *testing.T) {
	err := Validate(search{Limit: 900})
	e, ok := perr.As(err)
	if !ok {
		t.Fatalf("expected project error, got %v", err)
	}
	if e.Field() != "limit" {
		t.Fatalf("field = %q, want limit", e.Field())
	}
	if e.Message() != "limit must be at most 500" {
		t.Fatalf("message = %q", e.Message())
	}

	err = Validate(search{Limit: 1, StartDate: "17/10/2026"})
	if e, _ := perr.As(err); e == nil || e.Field() != "startDate" {
		t.Fatalf("field = %q, want startDate", e.Field())
	}
}

func TestGithubLoginRule(t *testing.T) {
	type in struct {
		Login *string `json:"githubUsername" validate:"omitempty,ghlogin"`
	}
	for _, login := range []string{"ada", "octo-cat", "a1", strings.Repeat("x", 39)} {
		if err := Validate(in{Login: &login}); err != nil {
			t.Fatalf("%q rejected: %v", login, err)
		}
	}
	for _, login := range []string{"-ada", "ada-", "oc--to", "ada lovelace", "ada@work", strings.Repeat("x", 40)} {
		err := Validate(in{Login: &login})
		if e, _ := perr.As(err); e == nil || e.Field() != "githubUsername" {
			t.Fatalf("%q accepted or wrong field: %v", login, err)
		}
	}
	if err := Validate(in{}); err != nil {
		t.Fatalf("nil login rejected: %v", err)
	}
}
