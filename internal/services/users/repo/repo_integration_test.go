//go:build integration_pg

package repo_test

import (
	"context"
	"testing"

	"workmonitor/internal/modkit/repokit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/store/pgtest"
	"workmonitor/internal/services/users/repo"
)

func TestByGithubUsernamePG(t *testing.T) {
	s := pgtest.Open(t, "schema.sql")
	ctx := context.Background()

	if _, err := s.PG.Exec(ctx, `
insert into users(id, name, image, github_username) values
  ('u1', 'Ada', 'https://img/ada.png', 'ada'),
  ('u2', 'Grace', null, 'grace'),
  ('u3', 'Grace Two', null, 'grace'),
  ('u4', 'Nobody', null, null)
`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := repo.NewPG().Bind(s.PG)

	got, err := r.ByGithubUsername(ctx, "ada", 2)
	if err != nil {
		t.Fatalf("ada: %v", err)
	}
	if len(got) != 1 || got[0].ID != "u1" || got[0].Image == nil || got[0].GithubUsername != "ada" {
		t.Fatalf("unexpected ada rows: %+v", got)
	}

	got, err = r.ByGithubUsername(ctx, "ADA", 2)
	if err != nil || len(got) != 0 {
		t.Fatalf("case mismatch should not match: %+v %v", got, err)
	}

	got, err = r.ByGithubUsername(ctx, "grace", 2)
	if err != nil || len(got) != 2 {
		t.Fatalf("want both graces: %+v %v", got, err)
	}
}

func TestListAndSetGithubUsernamePG(t *testing.T) {
	s := pgtest.Open(t, "schema.sql")
	ctx := context.Background()

	if _, err := s.PG.Exec(ctx, `
insert into users(id, name, image, github_username) values
  ('u1', 'Ada Lovelace', null, 'ada'),
  ('u2', 'Grace Hopper', null, null),
  ('u3', 'Alan Turing', null, 'aturing')
`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := repo.NewPG().Bind(s.PG)

	all, err := r.List(ctx, "", 10, 0)
	if err != nil || len(all) != 3 || all[0].ID != "u1" || all[1].ID != "u3" || all[2].ID != "u2" {
		t.Fatalf("want name order u1 u3 u2: %+v %v", all, err)
	}

	got, err := r.List(ctx, "TURING", 10, 0)
	if err != nil || len(got) != 1 || got[0].ID != "u3" {
		t.Fatalf("name search: %+v %v", got, err)
	}
	got, err = r.List(ctx, "ada", 10, 0)
	if err != nil || len(got) != 1 || got[0].ID != "u1" {
		t.Fatalf("login search: %+v %v", got, err)
	}
	got, err = r.List(ctx, "", 1, 1)
	if err != nil || len(got) != 1 || got[0].ID != "u3" {
		t.Fatalf("paging: %+v %v", got, err)
	}

	login := "ghopper"
	u, err := r.SetGithubUsername(ctx, "u2", &login)
	if err != nil || u.GithubUsername != "ghopper" || u.Name != "Grace Hopper" {
		t.Fatalf("set: %+v %v", u, err)
	}
	if found, _ := r.ByGithubUsername(ctx, "ghopper", 2); len(found) != 1 || found[0].ID != "u2" {
		t.Fatalf("new login not resolvable: %+v", found)
	}

	u, err = r.SetGithubUsername(ctx, "u2", nil)
	if err != nil || u.GithubUsername != "" {
		t.Fatalf("clear: %+v %v", u, err)
	}
	if u, err = r.ByID(ctx, "u2"); err != nil || u.GithubUsername != "" {
		t.Fatalf("cleared login persisted: %+v %v", u, err)
	}

	if _, err := r.SetGithubUsername(ctx, "missing", &login); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if _, err := r.ByID(ctx, "missing"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestLockLoginInsideTxPG(t *testing.T) {
	s := pgtest.Open(t, "schema.sql")
	ctx := context.Background()

	err := s.PG.Tx(ctx, func(q repokit.Queryer) error {
		return repo.NewPG().Bind(q).LockLogin(ctx, "ada")
	})
	if err != nil {
		t.Fatalf("lock: %v", err)
	}
}
