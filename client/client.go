// Package client is a Go SDK for the REST API of a Rhasspy voice-assistant
// server. One method per remote capability; requests are built against a
// fixed base URL (e.g. http://localhost:12101/api) and responses decoded for
// the caller.
package client

import (
	"context"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/voxmill/rhasspy-go/client/internal/shardqueue"
)

// executor abstracts the internal async job runner used by Say/AwaitSiteIdle.
type executor interface {
	Submit(context.Context, string, shardqueue.Job) error
	Stop()
}

// noOpExecutor backs clients built WithoutExecutor (sync-only use).
type noOpExecutor struct{}

func (noOpExecutor) Submit(context.Context, string, shardqueue.Job) error {
	panic("attempted to use async operation (Say, AwaitSiteIdle) on sync-only client")
}
func (noOpExecutor) Stop() {}

// Client talks to one Rhasspy server. The base URL is fixed at construction;
// the underlying *http.Client may be shared across many concurrent callers
// and is never closed by the SDK.
type Client struct {
	baseURL string
	http    *http.Client
	exec    executor

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client for the given API base URL (including the /api
// prefix). Additional behavior is supplied via functional options.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	return c
}

// Close stops the background executor (if any), draining queued utterances.
// Safe to call multiple times. The injected http.Client is left untouched.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// BaseURL returns the API base URL the client was constructed with.
func (c *Client) BaseURL() string { return c.baseURL }

// AwaitSiteIdle blocks until all previously submitted utterances for the given
// site have been executed by the internal executor. It works by submitting a
// no-op job and waiting for it to run, thereby guaranteeing FIFO ordering has
// flushed.
func (c *Client) AwaitSiteIdle(ctx context.Context, siteID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	j := shardqueue.JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, siteID, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor with env-tunable
// defaults (RHASSPY_SQ_* variables).
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		cfg = shardqueue.Config{Shards: 4, QueueSize: 128}
	}
	cfg.ErrorHandler = func(err error) {
		log.Error().Err(err).Msg("async utterance failed")
	}
	return shardqueue.NewShardExecutor(cfg)
}
