// Package service resolves github logins to users and edits the mapping
package service

import (
	"context"
	"strings"

	"workmonitor/internal/modkit/repokit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/logger"
	"workmonitor/internal/services/users/domain"
)

// Service is the users service contract
type Service interface {
	domain.ResolverPort
	domain.AdminPort
}

// Svc implements Service
type Svc struct {
	Repo   domain.Repo
	binder repokit.Binder[domain.Repo]
	db     repokit.TxRunner
}

var _ Service = (*Svc)(nil)

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[domain.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Resolve looks login up with an exact, case sensitive match
// two or more matching users are ambiguous and resolve to nothing
func (s *Svc) Resolve(ctx context.Context, login string) (domain.User, bool, error) {
	if strings.TrimSpace(login) == "" {
		return domain.User{}, false, nil
	}
	users, err := s.Repo.ByGithubUsername(ctx, login, 2)
	if err != nil {
		return domain.User{}, false, err
	}
	switch len(users) {
	case 0:
		return domain.User{}, false, nil
	case 1:
		return users[0], true, nil
	default:
		logger.C(ctx).Warn().Str("login", login).Msg("github login maps to more than one user")
		return domain.User{}, false, nil
	}
}

// List returns users ordered by name, limit defaults to 100 and is clamped to 500
func (s *Svc) List(ctx context.Context, in domain.ListInput) ([]domain.User, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultLimit
	}
	limit = min(limit, domain.MaxLimit)
	users, err := s.Repo.List(ctx, strings.TrimSpace(in.Search), limit, max(in.Offset, 0))
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Get returns one user or a NotFound error
func (s *Svc) Get(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, perr.NotFoundf("user not found")
	}
	u, err := s.Repo.ByID(ctx, id)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.User{}, perr.NotFoundf("user %s not found", id)
	}
	return u, err
}

// UpdateGithubUsername sets or clears the login of user id
// a login held by another user is a Conflict, the resolver would see it as ambiguous
func (s *Svc) UpdateGithubUsername(ctx context.Context, id string, in domain.UpdateInput) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, perr.NotFoundf("user not found")
	}
	var login *string
	if in.GithubUsername != nil {
		if v := strings.TrimSpace(*in.GithubUsername); v != "" {
			login = &v
		}
	}

	var out domain.User
	err := s.db.Tx(ctx, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if login != nil {
			if err := r.LockLogin(ctx, *login); err != nil {
				return err
			}
			holders, err := r.ByGithubUsername(ctx, *login, 2)
			if err != nil {
				return err
			}
			for _, h := range holders {
				if h.ID != id {
					return perr.WithField(perr.Newf(perr.ErrorCodeConflict, "github username %s belongs to user %s", *login, h.ID), "githubUsername")
				}
			}
		}
		u, err := r.SetGithubUsername(ctx, id, login)
		if err != nil {
			return err
		}
		out = u
		return nil
	})
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return domain.User{}, perr.NotFoundf("user %s not found", id)
	}
	if err != nil {
		return domain.User{}, err
	}
	logger.C(ctx).Info().Str("user_id", id).Str("login", out.GithubUsername).Msg("github username updated")
	return out, nil
}
