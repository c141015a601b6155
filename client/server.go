package client

import (
	"context"
	"net/http"
)

// Server maintenance operations

// Version returns the server's version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/version", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.do(httpReq, "version")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("version", resp); err != nil {
		return "", err
	}
	return readText(resp)
}

// Restart asks the server to restart itself and returns its reply text.
func (c *Client) Restart(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/restart", nil)
	if err != nil {
		return "", err
	}
	resp, err := c.do(httpReq, "restart")
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := checkStatus("restart", resp); err != nil {
		return "", err
	}
	return readText(resp)
}
