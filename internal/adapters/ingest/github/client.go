// Package github is a small GitHub REST v3 client with token rotation and retries
package github

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"workmonitor/internal/platform/config"
	perr "workmonitor/internal/platform/errors"
	"workmonitor/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.github.com"
	defaultTimeout   = 10 * time.Second
	defaultUA        = "workmonitor"
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	maxBackoff       = 30 * time.Second
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Tokens are used round robin, none means unauthenticated and a very low quota
	Tokens []string

	MaxRetries int
	RetryBase  time.Duration
}

// OptionsFromConfig reads SERVICE_GITHUB_TOKENS, SERVICE_GITHUB_BASE_URL and SERVICE_GITHUB_TIMEOUT
func OptionsFromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("SERVICE_GITHUB_")
	return Options{
		BaseURL:    c.MayString("BASE_URL", baseURLDefault),
		Timeout:    c.MayDuration("TIMEOUT", defaultTimeout),
		Tokens:     c.MayCSV("TOKENS", nil),
		MaxRetries: c.MayInt("MAX_RETRIES", defaultMaxRetry),
	}
}

// Client issues authenticated GET requests against the REST API
type Client struct {
	http   *http.Client
	opts   Options
	tokens []string
	cur    atomic.Int32
	log    logger.Logger
	now    func() time.Time
	sleep  func(context.Context, time.Duration) error
}

// NewClient applies defaults to o
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	var toks []string
	for _, t := range o.Tokens {
		if t = strings.TrimSpace(t); t != "" {
			toks = append(toks, t)
		}
	}
	return &Client{
		http:   &http.Client{Timeout: o.Timeout},
		opts:   o,
		tokens: toks,
		log:    *logger.Named("github"),
		now:    time.Now,
		sleep:  sleepCtx,
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *Client) nextToken() string {
	if len(c.tokens) == 0 {
		return ""
	}
	n := int(c.cur.Add(1))
	return c.tokens[n%len(c.tokens)]
}

// Get requests path and returns the response on 2xx
// rate limits and 502/503/504 are retried with backoff, other statuses become errors
// a rate limit whose reset is further out than maxBackoff fails at once
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/vnd.github+json")
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
		if tok := c.nextToken(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil || attempt >= c.opts.MaxRetries {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github request failed")
			}
			if err := c.retryIn(ctx, c.backoff(attempt), attempt, "github transport error retrying"); err != nil {
				return nil, err
			}
			continue
		}

		rl := parseRateHeaders(resp.Header)
		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempt).
			Dur("latency", c.now().Sub(start)).
			Int("rate_remaining", rl.remaining).
			Msg("github http response")

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusTooManyRequests, http.StatusForbidden:
			_ = drainAndClose(resp.Body)
			if resp.StatusCode == http.StatusForbidden && rl.remaining > 0 && rl.retryAfter == 0 {
				return nil, perr.Newf(perr.ErrorCodeForbidden, "github forbidden %s", path)
			}
			if attempt >= c.opts.MaxRetries {
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "github rate limited")
			}
			wait := rl.wait(c.now())
			if wait > maxBackoff {
				c.log.Warn().Dur("reset_in", wait).Str("path", path).Msg("github quota exhausted, not waiting for reset")
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "github rate limited, quota resets in %s", wait.Round(time.Second))
			}
			if wait <= 0 {
				wait = c.backoff(attempt)
			}
			if err := c.retryIn(ctx, wait, attempt, "github rate limited backing off"); err != nil {
				return nil, err
			}
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			_ = drainAndClose(resp.Body)
			if attempt >= c.opts.MaxRetries {
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "github transient server error %d", resp.StatusCode)
			}
			if err := c.retryIn(ctx, c.backoff(attempt), attempt, "github transient error retrying"); err != nil {
				return nil, err
			}
		case http.StatusNotFound:
			_ = drainAndClose(resp.Body)
			return nil, perr.NotFoundf("github %s not found", path)
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "github unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) retryIn(ctx context.Context, d time.Duration, attempt int, msg string) error {
	c.log.Warn().Dur("retry_in", d).Int("attempt", attempt).Msg(msg)
	if err := c.sleep(ctx, d); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "github retry cancelled")
	}
	return nil
}

// backoff doubles RetryBase per attempt up to maxBackoff
func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}
