// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"

	"workmonitor/internal/modkit/repokit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/store"
	pstrings "workmonitor/internal/platform/strings"
	"workmonitor/internal/services/users/domain"
)

type (
	// PG is a Postgres binder for domain.Repo
	PG      struct{}
	queries struct{ q repokit.Queryer }
)

var _ domain.Repo = (*queries)(nil)

// NewPG returns a Postgres binder for Repo
func NewPG() repokit.Binder[domain.Repo] { return PG{} }

// Bind implements repokit.Binder
func (PG) Bind(q repokit.Queryer) domain.Repo { return &queries{q: q} }

func (r *queries) ByGithubUsername(ctx context.Context, login string, limit int) ([]domain.User, error) {
	const sql = `
select id, name, image, github_username
from users
where github_username = $1
order by id
limit $2
`
	out, err := store.Many(ctx, r.q, scanUser, sql, login, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "lookup user by github username")
	}
	return out, nil
}

func (r *queries) ByID(ctx context.Context, id string) (domain.User, error) {
	const sql = `
select id, name, image, github_username
from users
where id = $1
`
	u, err := store.One(ctx, r.q, scanUser, sql, id)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.User{}, err
		}
		return domain.User{}, perr.FromPostgres(err, "user by id")
	}
	return u, nil
}

func (r *queries) List(ctx context.Context, search string, limit, offset int) ([]domain.User, error) {
	const sql = `
select id, name, image, github_username
from users
where $1 = ''
   or name ilike '%' || $1 || '%'
   or github_username ilike '%' || $1 || '%'
order by name, id
limit $2 offset $3
`
	out, err := store.Many(ctx, r.q, scanUser, sql, search, limit, offset)
	if err != nil {
		return nil, perr.FromPostgres(err, "list users")
	}
	return out, nil
}

func (r *queries) SetGithubUsername(ctx context.Context, id string, login *string) (domain.User, error) {
	const sql = `
update users set github_username = $2
where id = $1
returning id, name, image, github_username
`
	u, err := store.One(ctx, r.q, scanUser, sql, id, login)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.User{}, err
		}
		return domain.User{}, perr.FromPostgres(err, "set github username")
	}
	return u, nil
}

func (r *queries) LockLogin(ctx context.Context, login string) error {
	if _, err := r.q.Exec(ctx, `select pg_advisory_xact_lock(hashtext('github_username:' || $1))`, login); err != nil {
		return perr.FromPostgres(err, "lock github username")
	}
	return nil
}

func scanUser(row store.Row) (domain.User, error) {
	var (
		u     domain.User
		login *string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Image, &login); err != nil {
		return domain.User{}, err
	}
	u.GithubUsername = pstrings.Deref(login)
	return u, nil
}
