package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	perr "workmonitor/internal/platform/errors"
)

// CommitStats is the line level diff size of one commit
type CommitStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Total     int `json:"total"`
}

type commitDoc struct {
	SHA   string      `json:"sha"`
	Stats CommitStats `json:"stats"`
}

// CommitStats fetches GET /repos/{owner}/{repo}/commits/{sha} and returns its stats
// repo is the full name, like octo/widgets
func (c *Client) CommitStats(ctx context.Context, repo, sha string) (CommitStats, error) {
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" || sha == "" {
		return CommitStats{}, perr.Validationf("github commit lookup needs owner/repo and sha, got %q %q", repo, sha)
	}
	path := fmt.Sprintf("/repos/%s/%s/commits/%s", url.PathEscape(owner), url.PathEscape(name), url.PathEscape(sha))

	resp, err := c.Get(ctx, path)
	if err != nil {
		return CommitStats{}, err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	// commits with large file lists can be several MiB, only stats is needed
	var doc commitDoc
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&doc); err != nil {
		return CommitStats{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "github decode commit %s", sha)
	}
	return doc.Stats, nil
}
