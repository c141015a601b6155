package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Lookup(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/lookup" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("n") != "3" {
			t.Errorf("expected n=3, got %q", r.URL.Query().Get("n"))
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "moogle" {
			t.Errorf("unexpected body %q", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"in_dictionary":false,"pronunciations":["M UW G AH L","M UW G L"]}`))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	result, err := c.Lookup(context.Background(), "moogle", 3)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if result.InDictionary {
		t.Fatal("expected in_dictionary=false")
	}
	if len(result.Pronunciations) != 2 {
		t.Fatalf("unexpected pronunciations %v", result.Pronunciations)
	}
}

func TestClient_Lookup_DefaultN(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("n") != "5" {
			t.Errorf("expected default n=5, got %q", r.URL.Query().Get("n"))
		}
		_, _ = w.Write([]byte(`{"in_dictionary":true,"pronunciations":[]}`))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	if _, err := c.Lookup(context.Background(), "hello", 0); err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
}

func TestClient_Lookup_InvalidWord(t *testing.T) {
	c := New("http://localhost:12101/api", WithoutExecutor())
	if _, err := c.Lookup(context.Background(), "two words", 5); err == nil {
		t.Fatal("expected validation error for word with whitespace")
	}
}
