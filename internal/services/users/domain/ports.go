// Package domain holds the user types, the resolver port and the admin port
package domain

import "context"

// Paging defaults for the user list
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// User is the internal account an external login maps to
type User struct {
	ID             string  `json:"id" example:"usr_01J9Z4"`
	Name           string  `json:"name" example:"Ada Lovelace"`
	Image          *string `json:"image" example:"https://avatars.example.com/ada.png"`
	GithubUsername string  `json:"githubUsername,omitempty" example:"ada"`
}

// ListInput filters the user list
// Search is a case insensitive substring of the name or the github username
type ListInput struct {
	Search string `json:"search" validate:"max=200" example:"ada"`
	Limit  int    `json:"limit" validate:"omitempty,min=1" example:"100"`
	Offset int    `json:"offset" validate:"min=0" example:"0"`
}

// UpdateInput is the PATCH body for a user
// a null or empty githubUsername clears the mapping
type UpdateInput struct {
	GithubUsername *string `json:"githubUsername" validate:"omitempty,ghlogin" example:"ada"`
}

// Repo is the persistence surface for users
type Repo interface {
	// ByGithubUsername returns at most limit users whose github username equals login exactly
	ByGithubUsername(ctx context.Context, login string, limit int) ([]User, error)

	// ByID returns perr.ErrNotFound when no user has id
	ByID(ctx context.Context, id string) (User, error)

	// List orders by name then id
	List(ctx context.Context, search string, limit, offset int) ([]User, error)

	// SetGithubUsername writes login, nil stores NULL
	// returns perr.ErrNotFound when no user has id
	SetGithubUsername(ctx context.Context, id string, login *string) (User, error)

	// LockLogin serializes writers of one login until the transaction ends
	LockLogin(ctx context.Context, login string) error
}

// ResolverPort maps a github login to exactly one user
// a login with no match or with several matches resolves to ok false
type ResolverPort interface {
	Resolve(ctx context.Context, login string) (u User, ok bool, err error)
}

// AdminPort lists users and edits their github mapping
type AdminPort interface {
	List(ctx context.Context, in ListInput) ([]User, error)
	Get(ctx context.Context, id string) (User, error)
	UpdateGithubUsername(ctx context.Context, id string, in UpdateInput) (User, error)
}
