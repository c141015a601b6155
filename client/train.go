package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

// Train retrains the server's profile from its sentences, custom words, and
// slots. When noCache is true the server clears its cached artifacts first.
// Training failures are reported in the TrainingReport, not as an error, so
// the server's error text reaches the caller.
func (c *Client) Train(ctx context.Context, noCache bool) (*TrainingReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	u := c.baseURL + "/train"
	if noCache {
		params := url.Values{"no_cache": {"true"}}
		u += "?" + params.Encode()
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(httpReq, "train")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	text, err := readText(resp)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("errors", text).Msg("train failed")
		return &TrainingReport{Result: TrainingFailure, Errors: text}, nil
	}
	return &TrainingReport{Result: TrainingSuccess}, nil
}
