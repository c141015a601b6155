package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Speech operations - all synchronous

// SpeechToText transcribes a complete WAV recording.
func (c *Client) SpeechToText(ctx context.Context, wavData []byte) (*Transcription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u := c.baseURL + "/speech-to-text"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(wavData))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "audio/wav")

	resp, err := c.do(httpReq, "speech-to-text")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := readText(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || text == "" {
		return &Transcription{Result: TranscriptionFailure}, nil
	}
	return &Transcription{Result: TranscriptionSuccess, Text: text}, nil
}

// StreamToText transcribes raw 16-bit 16 kHz mono audio read from r.
// The body is streamed; the call returns once the server finishes decoding.
func (c *Client) StreamToText(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	params := url.Values{"noheader": {"true"}}
	u := c.baseURL + "/speech-to-text?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, r)
	if err != nil {
		return "", err
	}

	resp, err := c.do(httpReq, "speech-to-text")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("stream to text", resp); err != nil {
		return "", err
	}
	return readText(resp)
}

// TextToSpeech generates WAV audio for a sentence. When repeat is true the
// server repeats its last spoken sentence instead.
func (c *Client) TextToSpeech(ctx context.Context, text string, repeat bool) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !repeat {
		if err := ValidateText(text); err != nil {
			return nil, err
		}
	}

	params := url.Values{"repeat": {boolParam(repeat)}}
	u := c.baseURL + "/text-to-speech?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "text/plain")

	resp, err := c.do(httpReq, "text-to-speech")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("text to speech", resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}
