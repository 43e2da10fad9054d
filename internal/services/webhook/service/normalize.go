package service

import (
	"fmt"
	"strings"
	"time"

	"workmonitor/internal/adapters/ingest/githook"
	pstrings "workmonitor/internal/platform/strings"
	ptime "workmonitor/internal/platform/time"
	activity "workmonitor/internal/services/activity/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// pending is a draft waiting for its actor to resolve
type pending struct {
	login string
	draft activity.Draft
}

// pushDrafts yields one draft per commit with a github author, in payload order
// additions count added plus modified files and deletions count removed files
func pushDrafts(ev githook.PushEvent) []pending {
	branch := strings.Replace(ev.Ref, "refs/heads/", "", 1)
	repo := ev.Repository.FullName

	out := make([]pending, 0, len(ev.Commits))
	for _, c := range ev.Commits {
		if c.Author.Username == "" {
			continue
		}
		out = append(out, pending{
			login: c.Author.Username,
			draft: activity.Draft{
				Kind:        activity.KindCommit,
				Title:       pstrings.Truncate(pstrings.FirstLine(c.Message), activity.TitleMax),
				Description: c.Message,
				SHA:         pstrings.Ptr(c.ID),
				Repository:  repo,
				Branch:      pstrings.Ptr(branch),
				URL:         pstrings.Ptr(c.URL),
				Additions:   len(c.Added) + len(c.Modified),
				Deletions:   len(c.Removed),
				Timestamp:   ptime.ParseEventTime(c.Timestamp),
				ExternalKey: fmt.Sprintf("commit:%s:%s", repo, c.ID),
			},
		})
	}
	return out
}

// pullRequestStored reports whether a pull_request action produces a record
func pullRequestStored(ev githook.PullRequestEvent) bool {
	switch ev.Action {
	case "opened", "reopened", "closed":
		return true
	}
	return false
}

func reviewStored(ev githook.ReviewEvent) bool { return ev.Action == "submitted" }

func issueStored(ev githook.IssuesEvent) bool {
	switch ev.Action {
	case "opened", "closed", "reopened":
		return true
	}
	return false
}

// pullRequestDraft handles opened, reopened and closed, a closed and merged pull request is a merge
// the sender is the actor, not the pull request author
func pullRequestDraft(ev githook.PullRequestEvent, now time.Time) (pending, bool) {
	if !pullRequestStored(ev) {
		return pending{}, false
	}

	pr := ev.PullRequest
	repo := ev.Repository.FullName
	d := activity.Draft{
		SHA:        pstrings.Ptr(pr.Head.SHA),
		Repository: repo,
		Branch:     pstrings.Ptr(pr.Head.Ref),
		URL:        pstrings.Ptr(pr.HTMLURL),
		Additions:  pr.Additions,
		Deletions:  pr.Deletions,
		Timestamp:  now,
	}
	if ev.Action == "closed" && pr.Merged {
		d.Kind = activity.KindMerge
		d.Title = fmt.Sprintf("Merged: PR #%d - %s", ev.Number, pr.Title)
		d.Description = fmt.Sprintf("Merged pull request #%d into %s", ev.Number, pr.Base.Ref)
		d.ExternalKey = fmt.Sprintf("merge:%s:%d", repo, ev.Number)
	} else {
		d.Kind = activity.KindPullRequest
		d.Title = fmt.Sprintf("PR #%d: %s", ev.Number, pr.Title)
		d.Description = pstrings.Deref(pr.Body)
		d.ExternalKey = fmt.Sprintf("pr:%s:%d:%s", repo, ev.Number, ev.Action)
	}
	d.Title = pstrings.Truncate(d.Title, activity.TitleMax)
	return pending{login: ev.Sender.Login, draft: d}, true
}

func reviewStateLabel(state string) string {
	switch state {
	case "approved":
		return "Approved"
	case "changes_requested":
		return "Changes requested"
	default:
		return "Commented"
	}
}

// reviewDraft handles submitted reviews only
// a review without an id gets no external key and is never deduplicated
func reviewDraft(ev githook.ReviewEvent, now time.Time) (pending, bool) {
	if !reviewStored(ev) {
		return pending{}, false
	}
	label := reviewStateLabel(ev.Review.State)
	desc := pstrings.Deref(ev.Review.Body)
	if desc == "" {
		desc = fmt.Sprintf(`%s on "%s"`, label, ev.PullRequest.Title)
	}
	repo := ev.Repository.FullName
	var key string
	if ev.Review.ID != 0 {
		key = fmt.Sprintf("review:%s:%d", repo, ev.Review.ID)
	}
	return pending{
		login: ev.Sender.Login,
		draft: activity.Draft{
			Kind:        activity.KindReview,
			Title:       pstrings.Truncate(fmt.Sprintf("Review on PR #%d: %s", ev.PullRequest.Number, label), activity.TitleMax),
			Description: desc,
			Repository:  repo,
			URL:         pstrings.Ptr(ev.Review.HTMLURL),
			Timestamp:   now,
			ExternalKey: key,
		},
	}, true
}

// issueDraft handles opened, closed and reopened
func issueDraft(ev githook.IssuesEvent, now time.Time) (pending, bool) {
	if !issueStored(ev) {
		return pending{}, false
	}
	repo := ev.Repository.FullName
	title := fmt.Sprintf("%s Issue #%d: %s", cases.Title(language.English).String(ev.Action), ev.Issue.Number, ev.Issue.Title)
	return pending{
		login: ev.Sender.Login,
		draft: activity.Draft{
			Kind:        activity.KindIssue,
			Title:       pstrings.Truncate(title, activity.TitleMax),
			Description: pstrings.Deref(ev.Issue.Body),
			Repository:  repo,
			URL:         pstrings.Ptr(ev.Issue.HTMLURL),
			Timestamp:   now,
			ExternalKey: fmt.Sprintf("issue:%s:%d:%s", repo, ev.Issue.Number, ev.Action),
		},
	}, true
}
