// Package http provides http transport for user lookup and the github login mapping
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"workmonitor/internal/modkit/httpkit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/net/http/bind"
	"workmonitor/internal/services/users/domain"

	"github.com/go-chi/chi/v5"
)

// Register mounts user endpoints on the given router
func Register(r httpkit.Router, port domain.AdminPort) {
	h := &handlers{svc: port}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{id}", h.get)

	// sets or clears githubUsername
	httpkit.PatchJSON[domain.UpdateInput](r, "/{id}", h.update)
}

type handlers struct{ svc domain.AdminPort }

// swagger:route GET /users Users userList
// @Summary List users
// @Tags Users
// @Produce json
// @Param search query string false "Case insensitive name or github username substring"
// @Param limit query int false "default 100, values above 500 are clamped"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} domain.User "ok"
// @Router /users [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.ListInput{Search: strings.TrimSpace(q.Get("search"))}
	var err error
	if in.Limit, err = queryInt(q.Get("limit"), "limit"); err != nil {
		return nil, err
	}
	if in.Offset, err = queryInt(q.Get("offset"), "offset"); err != nil {
		return nil, err
	}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /users/{id} Users userGet
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} domain.User "ok"
// @Failure 404 {object} httpkit.Envelope "unknown user"
// @Router /users/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), chi.URLParam(r, "id"))
}

// swagger:route PATCH /users/{id} Users userUpdate
// @Summary Set or clear a user's github username
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param payload body domain.UpdateInput true "null or empty clears the mapping"
// @Success 200 {object} domain.User "ok"
// @Failure 400 {object} httpkit.Envelope "not a github login"
// @Failure 404 {object} httpkit.Envelope "unknown user"
// @Failure 409 {object} httpkit.Envelope "login held by another user"
// @Router /users/{id} [patch]
func (h *handlers) update(r *stdhttp.Request, in domain.UpdateInput) (any, error) {
	return h.svc.UpdateGithubUsername(r.Context(), chi.URLParam(r, "id"), in)
}

func queryInt(raw, field string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s must be a number", field), field)
	}
	return n, nil
}
