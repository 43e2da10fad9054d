// Package repo provides Postgres bindings for domain.Repo
package repo

import (
	"context"
	"time"

	"workmonitor/internal/modkit/repokit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/store"
	pstrings "workmonitor/internal/platform/strings"
	"workmonitor/internal/services/activity/domain"
	users "workmonitor/internal/services/users/domain"
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

const recordCols = `
a.id, a.type, a.title, a.description, a.sha, a.repository, a.branch, a.url,
a.additions, a.deletions, a.user_id, a.category_id, a.external_key, a.timestamp, a.created_at`

// filters shared by List and Count, $1..$7
const filterSQL = `
where ($1 = '' or a.type = $1)
and ($2 = '' or a.user_id = $2)
and ($3 = '' or a.repository ilike '%' || $3 || '%')
and ($4 = '' or a.category_id = $4)
and ($5::timestamptz is null or a.timestamp >= $5)
and ($6::timestamptz is null or a.timestamp <= $6)
`

func (r *queries) Insert(ctx context.Context, id string, d domain.Draft) (domain.Record, error) {
	const sql = `
insert into git_activities as a (
  id, type, title, description, sha, repository, branch, url,
  additions, deletions, user_id, external_key, timestamp
) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
returning` + recordCols

	rec, err := store.One(ctx, r.q, scanRecord, sql,
		id, string(d.Kind), d.Title, d.Description, d.SHA, d.Repository, d.Branch, d.URL,
		d.Additions, d.Deletions, d.UserID, pstrings.SQLNull(d.ExternalKey), d.Timestamp.UTC(),
	)
	if err != nil {
		return domain.Record{}, perr.FromPostgres(err, "insert activity")
	}
	return rec, nil
}

func (r *queries) ByExternalKey(ctx context.Context, key string) (domain.Record, error) {
	const sql = `select` + recordCols + `
from git_activities a
where a.external_key = $1
order by a.created_at
limit 1
`
	rec, err := store.One(ctx, r.q, scanRecord, sql, key)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Record{}, err
		}
		return domain.Record{}, perr.FromPostgres(err, "activity by external key")
	}
	return rec, nil
}

func (r *queries) LockKey(ctx context.Context, key string) error {
	if _, err := r.q.Exec(ctx, `select pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return perr.FromPostgres(err, "lock activity key")
	}
	return nil
}

func (r *queries) List(ctx context.Context, f domain.Filter) ([]domain.Record, error) {
	const sql = `select` + recordCols + `,
u.id, u.name, u.image, u.github_username
from git_activities a
join users u on u.id = a.user_id` + filterSQL + `
order by a.timestamp desc, a.id desc
limit $7 offset $8
`
	args := append(filterArgs(f), f.Limit, f.Offset)
	out, err := store.Many(ctx, r.q, scanRecordWithUser, sql, args...)
	if err != nil {
		return nil, perr.FromPostgres(err, "list activity")
	}
	return out, nil
}

func (r *queries) Count(ctx context.Context, f domain.Filter) (int64, error) {
	const sql = `select count(1) from git_activities a` + filterSQL
	n, err := store.Scalar[int64](ctx, r.q, sql, filterArgs(f)...)
	if err != nil {
		return 0, perr.FromPostgres(err, "count activity")
	}
	return n, nil
}

func (r *queries) CountByType(ctx context.Context, since time.Time) (map[domain.Kind]int64, error) {
	const sql = `
select type, count(1)
from git_activities
where timestamp >= $1
group by type
`
	rows, err := r.q.Query(ctx, sql, since.UTC())
	if err != nil {
		return nil, perr.FromPostgres(err, "count activity by type")
	}
	defer rows.Close()

	out := make(map[domain.Kind]int64, len(domain.Kinds))
	for rows.Next() {
		var (
			k string
			n int64
		)
		if err := rows.Scan(&k, &n); err != nil {
			return nil, err
		}
		out[domain.Kind(k)] = n
	}
	return out, rows.Err()
}

func filterArgs(f domain.Filter) []any {
	return []any{string(f.Type), f.UserID, f.Repository, f.CategoryID, f.Start, f.End}
}

func recordDest(rec *domain.Record, kind *string) []any {
	return []any{
		&rec.ID, kind, &rec.Title, &rec.Description, &rec.SHA, &rec.Repository, &rec.Branch, &rec.URL,
		&rec.Additions, &rec.Deletions, &rec.UserID, &rec.CategoryID, &rec.ExternalKey, &rec.Timestamp, &rec.CreatedAt,
	}
}

func scanRecord(row store.Row) (domain.Record, error) {
	var (
		rec  domain.Record
		kind string
	)
	if err := row.Scan(recordDest(&rec, &kind)...); err != nil {
		return domain.Record{}, err
	}
	rec.Type = domain.Kind(kind)
	return rec, nil
}

func scanRecordWithUser(row store.Row) (domain.Record, error) {
	var (
		rec   domain.Record
		kind  string
		u     users.User
		login *string
	)
	dest := append(recordDest(&rec, &kind), &u.ID, &u.Name, &u.Image, &login)
	if err := row.Scan(dest...); err != nil {
		return domain.Record{}, err
	}
	rec.Type = domain.Kind(kind)
	u.GithubUsername = pstrings.Deref(login)
	rec.User = &u
	return rec, nil
}
