package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Version(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/version" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("2.5.11"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	version, err := c.Version(context.Background())
	if err != nil {
		t.Fatalf("Version returned error: %v", err)
	}
	if version != "2.5.11" {
		t.Fatalf("unexpected version %q", version)
	}
}

func TestClient_Restart(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/restart" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("Restarting Rhasspy"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	reply, err := c.Restart(context.Background())
	if err != nil {
		t.Fatalf("Restart returned error: %v", err)
	}
	if reply != "Restarting Rhasspy" {
		t.Fatalf("unexpected reply %q", reply)
	}
}
