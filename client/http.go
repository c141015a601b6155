package client

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"
)

// maxErrBody bounds how much of an error response body is kept for diagnostics.
const maxErrBody = 4 << 10

// do issues the request and records per-endpoint metrics. Network failures
// are returned untouched (typically *url.Error) so callers can detect them
// with IsConnectionError.
func (c *Client) do(req *http.Request, endpoint string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}

// checkStatus returns a *StatusError when the response status is outside the
// 2xx range, capturing a bounded slice of the body.
func checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
}

// decodeJSON decodes the response body into v, wrapping failures in
// *DecodeError so callers can distinguish them from HTTP-level errors.
func decodeJSON(op string, resp *http.Response, v any) error {
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// readText drains the response body as a plain string.
func readText(resp *http.Response) (string, error) {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func boolParam(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
