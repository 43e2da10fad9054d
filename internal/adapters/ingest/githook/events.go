// Package githook holds the GitHub webhook payload schemas this service reads
// only the fields normalizers use are modelled, everything else is ignored on decode
package githook

// Event names as sent in X-GitHub-Event
const (
	EventPush        = "push"
	EventPullRequest = "pull_request"
	EventReview      = "pull_request_review"
	EventIssues      = "issues"
	EventPing        = "ping"
)

// Delivery headers
const (
	HeaderEvent    = "X-GitHub-Event"
	HeaderDelivery = "X-GitHub-Delivery"
)

// Supported lists the activity producing events
var Supported = []string{EventPush, EventPullRequest, EventReview, EventIssues}

// User is a GitHub account reference
type User struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
}

// Repository identifies the repository the event happened in
type Repository struct {
	FullName string `json:"full_name" validate:"required"`
	HTMLURL  string `json:"html_url"`
}

// CommitAuthor is the git author of a pushed commit
// Username is empty when the email does not map to a GitHub account
type CommitAuthor struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Commit is one entry of a push
type Commit struct {
	ID        string       `json:"id" validate:"required"`
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
	URL       string       `json:"url"`
	Author    CommitAuthor `json:"author"`
	Added     []string     `json:"added"`
	Removed   []string     `json:"removed"`
	Modified  []string     `json:"modified"`
}

// PushEvent is the push payload
type PushEvent struct {
	Ref        string     `json:"ref" validate:"required"`
	Repository Repository `json:"repository"`
	Sender     User       `json:"sender"`
	Commits    []Commit   `json:"commits" validate:"dive"`
}

// Ref names a branch tip
type Ref struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// PullRequest is the pull_request object of a pull_request event
type PullRequest struct {
	Title     string  `json:"title"`
	Body      *string `json:"body"`
	HTMLURL   string  `json:"html_url"`
	Head      Ref     `json:"head"`
	Base      Ref     `json:"base"`
	Merged    bool    `json:"merged"`
	Additions int     `json:"additions"`
	Deletions int     `json:"deletions"`
	User      User    `json:"user"`
}

// PullRequestEvent is the pull_request payload
type PullRequestEvent struct {
	Action      string      `json:"action" validate:"required"`
	Number      int         `json:"number" validate:"min=1"`
	PullRequest PullRequest `json:"pull_request"`
	Repository  Repository  `json:"repository"`
	Sender      User        `json:"sender"`
}

// Review is a submitted pull request review
type Review struct {
	ID      int64   `json:"id"`
	Body    *string `json:"body"`
	State   string  `json:"state"`
	HTMLURL string  `json:"html_url"`
	User    User    `json:"user"`
}

// ReviewedPullRequest is the pull request a review belongs to
type ReviewedPullRequest struct {
	Number  int    `json:"number" validate:"min=1"`
	Title   string `json:"title"`
	HTMLURL string `json:"html_url"`
}

// ReviewEvent is the pull_request_review payload
type ReviewEvent struct {
	Action      string              `json:"action" validate:"required"`
	Review      Review              `json:"review"`
	PullRequest ReviewedPullRequest `json:"pull_request"`
	Repository  Repository          `json:"repository"`
	Sender      User                `json:"sender"`
}

// Issue is the issue object of an issues event
type Issue struct {
	Number  int     `json:"number" validate:"min=1"`
	Title   string  `json:"title"`
	Body    *string `json:"body"`
	HTMLURL string  `json:"html_url"`
	State   string  `json:"state"`
	User    User    `json:"user"`
}

// IssuesEvent is the issues payload
type IssuesEvent struct {
	Action     string     `json:"action" validate:"required"`
	Issue      Issue      `json:"issue"`
	Repository Repository `json:"repository"`
	Sender     User       `json:"sender"`
}

// PingEvent is sent once when a hook is created
// repository is absent for organization hooks
type PingEvent struct {
	Zen        string      `json:"zen"`
	HookID     int64       `json:"hook_id"`
	Repository *Repository `json:"repository"`
}
