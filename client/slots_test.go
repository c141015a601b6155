package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestClient_GetSlots(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/slots" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"colors":["red","green"],"rooms":["kitchen"]}`))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	slots, err := c.GetSlots(context.Background())
	if err != nil {
		t.Fatalf("GetSlots returned error: %v", err)
	}
	want := Slots{"colors": {"red", "green"}, "rooms": {"kitchen"}}
	if !reflect.DeepEqual(slots, want) {
		t.Fatalf("unexpected slots %#v", slots)
	}
}

func TestClient_SetSlots(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/slots" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("overwrite_all") != "true" {
			t.Errorf("expected overwrite_all=true")
		}
		var got Slots
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if !reflect.DeepEqual(got, Slots{"colors": {"blue"}}) {
			t.Errorf("unexpected body %#v", got)
		}
		_, _ = w.Write([]byte("OK"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	if _, err := c.SetSlots(context.Background(), Slots{"colors": {"blue"}}, true); err != nil {
		t.Fatalf("SetSlots returned error: %v", err)
	}
}

func TestClient_SetSlots_Append(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("overwrite_all") != "false" {
			t.Errorf("expected overwrite_all=false when appending")
		}
		_, _ = w.Write([]byte("OK"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	if _, err := c.SetSlots(context.Background(), Slots{"colors": {"blue"}}, false); err != nil {
		t.Fatalf("SetSlots returned error: %v", err)
	}
}
