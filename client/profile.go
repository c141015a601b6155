package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Profile operations. Profile settings are opaque JSON owned by the server.

// GetProfile fetches the current profile. When defaults is true the returned
// settings include the server's default layer, otherwise only the values the
// profile overrides.
func (c *Client) GetProfile(ctx context.Context, defaults bool) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layers := "profile"
	if defaults {
		layers = "all"
	}
	params := url.Values{"layers": {layers}}
	u := c.baseURL + "/profile?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(httpReq, "profile")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get profile", resp); err != nil {
		return nil, err
	}
	var profile map[string]any
	if err := decodeJSON("get profile", resp, &profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetProfile uploads profile settings and returns the server's reply text.
// Restart the server for the new settings to take effect.
func (c *Client) SetProfile(ctx context.Context, profile any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/profile", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.do(httpReq, "profile")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("set profile", resp); err != nil {
		return "", err
	}
	return readText(resp)
}
