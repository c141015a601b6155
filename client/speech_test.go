package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_SpeechToText(t *testing.T) {
	wav := []byte("RIFF....WAVEfake")

	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/speech-to-text" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "audio/wav" {
			t.Errorf("unexpected content type %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if !bytes.Equal(body, wav) {
			t.Errorf("wav body mismatch")
		}
		_, _ = w.Write([]byte("what time is it"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	tr, err := c.SpeechToText(context.Background(), wav)
	if err != nil {
		t.Fatalf("SpeechToText returned error: %v", err)
	}
	if tr.Result != TranscriptionSuccess || tr.Text != "what time is it" {
		t.Fatalf("unexpected transcription %+v", tr)
	}
}

func TestClient_SpeechToText_ServerFailure(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no transcriber loaded", http.StatusInternalServerError)
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	tr, err := c.SpeechToText(context.Background(), []byte("RIFF"))
	if err != nil {
		t.Fatalf("SpeechToText returned error: %v", err)
	}
	if tr.Result != TranscriptionFailure {
		t.Fatalf("expected failure result, got %+v", tr)
	}
}

func TestClient_StreamToText(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("noheader") != "true" {
			t.Errorf("expected noheader=true")
		}
		_, _ = io.Copy(io.Discard, r.Body)
		_, _ = w.Write([]byte("turn on the light"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	text, err := c.StreamToText(context.Background(), strings.NewReader("rawaudio"))
	if err != nil {
		t.Fatalf("StreamToText returned error: %v", err)
	}
	if text != "turn on the light" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestClient_TextToSpeech(t *testing.T) {
	wav := []byte("RIFFfakeaudio")

	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/text-to-speech" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("repeat") != "false" {
			t.Errorf("expected repeat=false")
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "hello there" {
			t.Errorf("unexpected body %q", body)
		}
		_, _ = w.Write(wav)
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	audio, err := c.TextToSpeech(context.Background(), "hello there", false)
	if err != nil {
		t.Fatalf("TextToSpeech returned error: %v", err)
	}
	if !bytes.Equal(audio, wav) {
		t.Fatalf("audio mismatch")
	}
}

func TestClient_TextToSpeech_Repeat(t *testing.T) {
	hs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("repeat") != "true" {
			t.Errorf("expected repeat=true")
		}
		_, _ = w.Write([]byte("RIFF"))
	}))
	defer hs.Close()

	c := New(hs.URL, WithoutExecutor())
	// Empty text is allowed when repeating the last sentence.
	if _, err := c.TextToSpeech(context.Background(), "", true); err != nil {
		t.Fatalf("TextToSpeech returned error: %v", err)
	}
}
