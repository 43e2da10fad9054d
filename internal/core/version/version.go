// Package version reports build information stamped with -ldflags
package version

// BuildInfo identifies a running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// set with -ldflags "-X workmonitor/internal/core/version.version=v0.1.0 ..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the build information of service
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgent is the User-Agent sent on outbound calls, like workmonitor-api/v0.1.0
func UserAgent(service string) string { return service + "/" + version }
