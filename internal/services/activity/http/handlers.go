// Package http provides http transport for the activity read API
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"workmonitor/internal/modkit/httpkit"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/net/http/bind"
	"workmonitor/internal/services/activity/domain"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, q domain.QueryPort) {
	h := &handlers{svc: q}

	// filtered list, newest first
	httpkit.Get(r, "/", h.list)

	// same filters as a JSON body
	httpkit.PostJSON[domain.ListInput](r, "/search", h.search)

	// today and last seven days
	httpkit.Get(r, "/stats", h.stats)
}

type handlers struct{ svc domain.QueryPort }

// swagger:route GET /activities Activity activityList
// @Summary List activity
// @Tags Activity
// @Produce json
// @Param type query string false "COMMIT, PULL_REQUEST, REVIEW, MERGE or ISSUE"
// @Param userId query string false "User id"
// @Param repository query string false "Case insensitive repository substring"
// @Param categoryId query string false "Category id"
// @Param startDate query string false "RFC3339 or YYYY-MM-DD, inclusive"
// @Param endDate query string false "RFC3339 or YYYY-MM-DD, inclusive"
// @Param limit query int false "default 100, values above 500 are clamped"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} domain.Page "ok"
// @Router /activities [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	in, err := listInputFromQuery(r)
	if err != nil {
		return nil, err
	}
	if err := bind.Validate(in); err != nil {
		return nil, err
	}
	return h.svc.List(r.Context(), in)
}

// swagger:route POST /activities/search Activity activitySearch
// @Summary Search activity
// @Tags Activity
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filters"
// @Success 200 {object} domain.Page "ok"
// @Router /activities/search [post]
func (h *handlers) search(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// swagger:route GET /activities/stats Activity activityStats
// @Summary Activity stats
// @Tags Activity
// @Produce json
// @Success 200 {object} domain.Stats "ok"
// @Router /activities/stats [get]
func (h *handlers) stats(r *stdhttp.Request) (any, error) {
	return h.svc.Stats(r.Context())
}

func listInputFromQuery(r *stdhttp.Request) (domain.ListInput, error) {
	q := r.URL.Query()
	in := domain.ListInput{
		Type:       strings.TrimSpace(q.Get("type")),
		UserID:     strings.TrimSpace(q.Get("userId")),
		Repository: strings.TrimSpace(q.Get("repository")),
		CategoryID: strings.TrimSpace(q.Get("categoryId")),
		StartDate:  strings.TrimSpace(q.Get("startDate")),
		EndDate:    strings.TrimSpace(q.Get("endDate")),
	}
	var err error
	if in.Limit, err = queryInt(q.Get("limit"), "limit"); err != nil {
		return in, err
	}
	if in.Offset, err = queryInt(q.Get("offset"), "offset"); err != nil {
		return in, err
	}
	return in, nil
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
