package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Slot operations

// GetSlots fetches slot values from the server, grouped by slot name.
func (c *Client) GetSlots(ctx context.Context) (Slots, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/slots", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(httpReq, "slots")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("get slots", resp); err != nil {
		return nil, err
	}
	var slots Slots
	if err := decodeJSON("get slots", resp, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// SetSlots uploads slot values grouped by slot name. When overwrite is false
// the values are appended to existing slots instead of replacing them.
func (c *Client) SetSlots(ctx context.Context, slots Slots, overwrite bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	body, err := json.Marshal(slots)
	if err != nil {
		return "", err
	}
	params := url.Values{"overwrite_all": {boolParam(overwrite)}}
	u := c.baseURL + "/slots?" + params.Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.do(httpReq, "slots")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("set slots", resp); err != nil {
		return "", err
	}
	return readText(resp)
}
