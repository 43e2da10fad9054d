// Command workmonitor-deliver replays a saved GitHub payload against a webhook endpoint
//
//	workmonitor-deliver -event push -file testdata/push.json
//	cat issue.json | workmonitor-deliver -event issues -file -
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"workmonitor/internal/adapters/ingest/githook"
	"workmonitor/internal/core/signature"
	"workmonitor/internal/core/version"
	"workmonitor/internal/platform/config"
	"workmonitor/internal/platform/logger"

	"github.com/google/uuid"
)

func main() {
	cfg := config.New().Prefix("GITHUB_WEBHOOK_")
	l := logger.Named("deliver")

	var (
		fURL     = flag.String("url", "http://localhost:4000/api/webhooks/github", "webhook endpoint")
		fEvent   = flag.String("event", "ping", "X-GitHub-Event value")
		fFile    = flag.String("file", "-", "payload file, - reads stdin")
		fSecret  = flag.String("secret", cfg.MayString("SECRET", ""), "HMAC secret, defaults to GITHUB_WEBHOOK_SECRET")
		fTimeout = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	body, err := readPayload(*fFile)
	if err != nil {
		l.Fatal().Err(err).Str("file", *fFile).Msg("read payload")
	}
	if !json.Valid(body) {
		l.Warn().Msg("payload is not valid JSON, the endpoint will reject it")
	}

	id, err := uuid.NewV7()
	if err != nil {
		l.Fatal().Err(err).Msg("delivery id")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *fTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *fURL, bytes.NewReader(body))
	if err != nil {
		cancel()
		l.Fatal().Err(err).Msg("build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.UserAgent("workmonitor-deliver"))
	req.Header.Set(githook.HeaderEvent, *fEvent)
	req.Header.Set(githook.HeaderDelivery, id.String())
	if *fSecret != "" {
		req.Header.Set(signature.Header, signature.New(*fSecret).Sign(body))
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		l.Fatal().Err(err).Str("url", *fURL).Msg("deliver")
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s\n%s\n", id, resp.Status, bytes.TrimSpace(out))
	if resp.StatusCode >= 300 {
		cancel()
		os.Exit(1)
	}
}

func readPayload(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
