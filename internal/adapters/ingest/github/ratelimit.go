package github

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

type rateLimit struct {
	remaining  int
	reset      time.Time
	retryAfter int
}

// parseRateHeaders reads X-RateLimit-Remaining, X-RateLimit-Reset and Retry-After
// remaining is -1 when the header is absent
func parseRateHeaders(h http.Header) rateLimit {
	rl := rateLimit{remaining: -1}
	if v, err := strconv.Atoi(h.Get("X-RateLimit-Remaining")); err == nil {
		rl.remaining = v
	}
	if v, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64); err == nil && v > 0 {
		rl.reset = time.Unix(v, 0).UTC()
	}
	if v, err := strconv.Atoi(h.Get("Retry-After")); err == nil {
		rl.retryAfter = v
	}
	return rl
}

// wait prefers Retry-After, then the reset time when the quota is spent
func (rl rateLimit) wait(now time.Time) time.Duration {
	if rl.retryAfter > 0 {
		return time.Duration(rl.retryAfter) * time.Second
	}
	if rl.remaining == 0 && rl.reset.After(now) {
		return rl.reset.Sub(now)
	}
	return 0
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
