// Package domain holds activity records, their kinds and the read API DTOs
package domain

import (
	"time"

	users "workmonitor/internal/services/users/domain"
)

// Kind is the activity type stored in git_activities.type
type Kind string

const (
	// KindCommit is one pushed commit
	KindCommit Kind = "COMMIT"
	// KindPullRequest is a pull request opened, reopened or closed without merge
	KindPullRequest Kind = "PULL_REQUEST"
	// KindReview is a submitted pull request review
	KindReview Kind = "REVIEW"
	// KindMerge is a pull request closed with merged true
	KindMerge Kind = "MERGE"
	// KindIssue is an issue opened, closed or reopened
	KindIssue Kind = "ISSUE"
)

// Kinds lists every kind in display order
var Kinds = []Kind{KindCommit, KindPullRequest, KindReview, KindMerge, KindIssue}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	for _, x := range Kinds {
		if k == x {
			return true
		}
	}
	return false
}

// TitleMax is the stored title limit in characters
const TitleMax = 200

// Draft is a normalized activity before it is stored
type Draft struct {
	Kind        Kind
	Title       string
	Description string
	SHA         *string
	Repository  string
	Branch      *string
	URL         *string
	Additions   int
	Deletions   int
	UserID      string
	Timestamp   time.Time

	// ExternalKey identifies the upstream object, e.g. commit:<repo>:<sha>
	ExternalKey string
}

// Record is a stored activity
type Record struct {
	ID          string      `json:"id" example:"0192f3a4-5b6c-7d8e-9f00-112233445566"`
	Type        Kind        `json:"type" example:"COMMIT"`
	Title       string      `json:"title" example:"Fix flaky login test"`
	Description string      `json:"description" example:"Fix flaky login test\n\nRetry the session fetch once"`
	SHA         *string     `json:"sha" example:"9fceb02d0ae598e95dc970b74767f19372d61af8"`
	Repository  string      `json:"repository" example:"acme/widgets"`
	Branch      *string     `json:"branch" example:"main"`
	URL         *string     `json:"url" example:"https://github.com/acme/widgets/commit/9fceb02"`
	Additions   int         `json:"additions" example:"3"`
	Deletions   int         `json:"deletions" example:"1"`
	UserID      string      `json:"userId" example:"usr_01J9Z4"`
	CategoryID  *string     `json:"categoryId"`
	ExternalKey *string     `json:"externalKey,omitempty"`
	Timestamp   time.Time   `json:"timestamp" example:"2026-10-01T12:00:00Z"`
	CreatedAt   time.Time   `json:"createdAt" example:"2026-10-01T12:00:01Z"`
	User        *users.User `json:"user,omitempty"`
}

// ListInput filters the activity list
// dates accept RFC3339 or YYYY-MM-DD
type ListInput struct {
	Type       string `json:"type,omitempty" query:"type" validate:"omitempty,oneof=COMMIT PULL_REQUEST REVIEW MERGE ISSUE" example:"COMMIT"`
	UserID     string `json:"userId,omitempty" query:"userId" validate:"omitempty,max=64" example:"usr_01J9Z4"`
	Repository string `json:"repository,omitempty" query:"repository" validate:"omitempty,max=200" example:"widgets"`
	CategoryID string `json:"categoryId,omitempty" query:"categoryId" validate:"omitempty,max=64" example:"cat_backend"`
	StartDate  string `json:"startDate,omitempty" query:"startDate" validate:"omitempty,datestr" example:"2026-10-01"`
	EndDate    string `json:"endDate,omitempty" query:"endDate" validate:"omitempty,datestr" example:"2026-10-31"`
	Limit      int    `json:"limit,omitempty" query:"limit" validate:"omitempty,min=1" example:"100"`
	Offset     int    `json:"offset,omitempty" query:"offset" validate:"omitempty,min=0" example:"0"`
}

// DefaultLimit applies when ListInput.Limit is zero
const DefaultLimit = 100

// MaxLimit caps ListInput.Limit, larger values are clamped
const MaxLimit = 500

// Pagination describes the returned window
type Pagination struct {
	Total   int64 `json:"total" example:"240"`
	Limit   int   `json:"limit" example:"100"`
	Offset  int   `json:"offset" example:"0"`
	HasMore bool  `json:"hasMore" example:"true"`
}

// Page is one window of the activity list
type Page struct {
	Items      []Record   `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// TodayStats counts today's activity, today is the UTC day
type TodayStats struct {
	Commits      int64 `json:"commits" example:"12"`
	PullRequests int64 `json:"pullRequests" example:"3"`
	Reviews      int64 `json:"reviews" example:"5"`
	Merges       int64 `json:"merges" example:"2"`
	Total        int64 `json:"total" example:"22"`
}

// WeeklyStats counts activity over the last seven days
type WeeklyStats struct {
	Commits int64          `json:"commits" example:"61"`
	ByType  map[Kind]int64 `json:"byType"`
}

// Stats summarises recent activity
type Stats struct {
	Today  TodayStats  `json:"today"`
	Weekly WeeklyStats `json:"weekly"`
	Recent []Record    `json:"recent"`
}

// RecentLimit is the number of records Stats.Recent carries
const RecentLimit = 5
