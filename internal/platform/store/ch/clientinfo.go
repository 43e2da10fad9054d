package ch

import (
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo describes this process in system.query_log
func BuildClientInfo(role string) clickhouse.ClientInfo {
	host, _ := os.Hostname()

	info := clickhouse.ClientInfo{}
	for _, p := range [][2]string{
		{"workmonitor", vcsShortSHA()},
		{"role", role},
		{"go", runtime.Version()},
		{"host", host},
	} {
		name, ver := strings.TrimSpace(p[0]), strings.TrimSpace(p[1])
		if ver == "" {
			ver = "unknown"
		}
		info.Products = append(info.Products, struct {
			Name    string
			Version string
		}{Name: name, Version: ver})
	}
	return info
}

func vcsShortSHA() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 7 {
				return s.Value[:7]
			}
		}
	}
	return "unknown"
}
