// Package config reads service configuration from prefixed environment variables
// Must* accessors panic through the root logger, May* accessors fall back to a default
package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"workmonitor/internal/platform/logger"
)

// Conf is a prefixed view over the environment, e.g. New().Prefix("GITHUB_WEBHOOK_")
type Conf struct{ prefix string }

// New returns the unprefixed root Conf
func New() Conf { return Conf{} }

// Prefix returns a child Conf, prefixes accumulate
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully qualified variable name for key
func (c Conf) Key(key string) string { return c.prefix + key }

func (c Conf) get(key string) string { return strings.TrimSpace(os.Getenv(c.Key(key))) }

// MustString panics when key is unset or blank
func (c Conf) MustString(key string) string {
	v := c.get(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MustInt panics when key is unset or not an integer
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustURL panics when key is unset or not an absolute URL
func (c Conf) MustURL(key string) *url.URL {
	s := c.MustString(key)
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid absolute URL")
	}
	return u
}

// MayString returns def when key is unset or blank
func (c Conf) MayString(key, def string) string {
	if v := c.get(key); v != "" {
		return v
	}
	return def
}

// MayInt returns def when key is unset, invalid values are logged and ignored
func (c Conf) MayInt(key string, def int) int {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
		return def
	}
	return v
}

// MayInt64 is MayInt for byte sizes and other wide values
func (c Conf) MayInt64(key string, def int64) int64 {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Int64("default", def).Msg("invalid int64; using default")
		return def
	}
	return v
}

// MayBool returns def when key is unset, invalid values are logged and ignored
func (c Conf) MayBool(key string, def bool) bool {
	s := c.get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
		return def
	}
	return v
}

// MayDuration parses Go durations such as 250ms or 10s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.get(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Warn().Str("key", c.Key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
		return def
	}
	return d
}

// MayCSV splits a comma separated value, dropping blanks
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.get(key)
	if s == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
