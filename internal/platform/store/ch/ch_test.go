package ch

import (
	"context"
	"strings"
	"testing"
)

func TestBuildClientInfo(t *testing.T) {
	t.Parallel()

	info := BuildClientInfo("api")
	if len(info.Products) != 4 {
		t.Fatalf("products = %d", len(info.Products))
	}
	if info.Products[0].Name != "workmonitor" {
		t.Fatalf("first product = %q", info.Products[0].Name)
	}
	if info.Products[1].Version != "api" {
		t.Fatalf("role = %q", info.Products[1].Version)
	}
	for _, p := range info.Products {
		if p.Version == "" {
			t.Fatalf("empty version for %s", p.Name)
		}
	}
}

func TestOpenRejectsBadDSN(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), Config{URL: "://nope"})
	if err == nil || !strings.Contains(err.Error(), "clickhouse dsn") {
		t.Fatalf("err = %v", err)
	}
}
