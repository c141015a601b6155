package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestClient_Say_FIFOPerSite(t *testing.T) {
	var (
		mu     sync.Mutex
		spoken []string
	)
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text-to-speech" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		spoken = append(spoken, string(body))
		mu.Unlock()
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer hs.Close()

	c := New(hs.URL)
	defer func() { _ = c.Close() }()

	ctx := context.Background()
	utterances := []string{"first", "second", "third", "fourth"}
	for _, text := range utterances {
		ack, err := c.Say(ctx, "kitchen", text)
		if err != nil {
			t.Fatalf("Say(%q): %v", text, err)
		}
		if ack.SiteID != "kitchen" {
			t.Fatalf("unexpected ack %+v", ack)
		}
	}

	waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := c.AwaitSiteIdle(waitCtx, "kitchen"); err != nil {
		t.Fatalf("AwaitSiteIdle: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(spoken) != len(utterances) {
		t.Fatalf("expected %d utterances, got %v", len(utterances), spoken)
	}
	for i, text := range utterances {
		if spoken[i] != text {
			t.Fatalf("ordering violated: got %v", spoken)
		}
	}
}

func TestClient_Say_DefaultSite(t *testing.T) {
	siteCh := make(chan string, 1)
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siteCh <- r.URL.Query().Get("siteId")
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer hs.Close()

	c := New(hs.URL)
	defer func() { _ = c.Close() }()

	ack, err := c.Say(context.Background(), "", "hello")
	if err != nil {
		t.Fatalf("Say: %v", err)
	}
	if ack.SiteID != DefaultSiteID {
		t.Fatalf("expected default site, got %q", ack.SiteID)
	}

	select {
	case site := <-siteCh:
		if site != DefaultSiteID {
			t.Fatalf("expected siteId=%q, got %q", DefaultSiteID, site)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("utterance never reached the server")
	}
}

func TestClient_Say_Validation(t *testing.T) {
	c := New("http://localhost:12101/api")
	defer func() { _ = c.Close() }()

	if _, err := c.Say(context.Background(), "kitchen", "  "); err == nil {
		t.Fatal("expected validation error for blank text")
	}
	if _, err := c.Say(context.Background(), "bad site!", "hello"); err == nil {
		t.Fatal("expected validation error for invalid site id")
	}
}

// When a site's queue is full, Say must surface the public back-pressure
// error, not the executor's internal one.
func TestClient_Say_BackPressure(t *testing.T) {
	t.Setenv("RHASSPY_SQ_SHARDS", "1")
	t.Setenv("RHASSPY_SQ_QUEUE_SIZE", "1")
	t.Setenv("RHASSPY_SQ_ENQUEUE_TIMEOUT", "10ms")

	started := make(chan struct{})
	gate := make(chan struct{})
	var once sync.Once
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { close(started) })
		<-gate
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer hs.Close()

	c := New(hs.URL)
	defer func() { _ = c.Close() }()
	// Opened before Close runs so the drained jobs can finish.
	defer close(gate)

	ctx := context.Background()
	// First utterance occupies the worker...
	if _, err := c.Say(ctx, "kitchen", "one"); err != nil {
		t.Fatalf("Say one: %v", err)
	}
	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first utterance never reached the server")
	}
	// ...the second fills the single queue slot...
	if _, err := c.Say(ctx, "kitchen", "two"); err != nil {
		t.Fatalf("Say two: %v", err)
	}
	// ...and the third must be rejected with back-pressure.
	_, err := c.Say(ctx, "kitchen", "three")
	if err == nil {
		t.Fatal("expected back-pressure error")
	}
	if !IsBackPressure(err) {
		t.Fatalf("expected IsBackPressure, got %T: %v", err, err)
	}
	if !errors.Is(err, ErrBackPressure) {
		t.Fatalf("expected ErrBackPressure, got %v", err)
	}
}

// Utterance counters are labelled by site ID so they correlate with the
// per-site queues callers reason about.
func TestClient_Say_SiteMetricLabel(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer hs.Close()

	c := New(hs.URL)
	defer func() { _ = c.Close() }()

	before := testutil.ToFloat64(utterancesEnqueuedTotal.WithLabelValues("livingroom"))
	if _, err := c.Say(context.Background(), "livingroom", "hello"); err != nil {
		t.Fatalf("Say: %v", err)
	}
	after := testutil.ToFloat64(utterancesEnqueuedTotal.WithLabelValues("livingroom"))
	if after-before != 1 {
		t.Fatalf("expected enqueued counter for site to grow by 1, got %v", after-before)
	}
}

// A 4xx response must not be retried: the server sees exactly one request.
func TestClient_Say_IrrecoverableNotRetried(t *testing.T) {
	var (
		mu   sync.Mutex
		hits int
	)
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		mu.Unlock()
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer hs.Close()

	c := New(hs.URL)
	defer func() { _ = c.Close() }()

	if _, err := c.Say(context.Background(), "kitchen", "hello"); err != nil {
		t.Fatalf("Say: %v", err)
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.AwaitSiteIdle(waitCtx, "kitchen"); err != nil {
		t.Fatalf("AwaitSiteIdle: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if hits != 1 {
		t.Fatalf("expected exactly one attempt for a 4xx, got %d", hits)
	}
}
