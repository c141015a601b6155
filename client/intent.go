package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Intent operations - all synchronous

// TextToIntent recognizes an intent from a sentence. The decoded JSON object
// is returned exactly as the server sent it.
//
// When handleIntent is true the server also forwards the intent to its
// configured handler (e.g. Home Assistant).
func (c *Client) TextToIntent(ctx context.Context, text string, handleIntent bool) (Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	params := url.Values{"nohass": {boolParam(!handleIntent)}}
	u := c.baseURL + "/text-to-intent?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "text/plain")

	resp, err := c.do(httpReq, "text-to-intent")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("text to intent", resp); err != nil {
		return nil, err
	}
	var intent Intent
	if err := decodeJSON("text to intent", resp, &intent); err != nil {
		return nil, err
	}
	return intent, nil
}

// ListenForCommand wakes the server so it starts listening for a voice
// command, then blocks until the recognized intent arrives.
func (c *Client) ListenForCommand(ctx context.Context, handleIntent bool) (Intent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := url.Values{"nohass": {boolParam(!handleIntent)}}
	u := c.baseURL + "/listen-for-command?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(httpReq, "listen-for-command")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("listen for command", resp); err != nil {
		return nil, err
	}
	var intent Intent
	if err := decodeJSON("listen for command", resp, &intent); err != nil {
		return nil, err
	}
	return intent, nil
}
