package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/voxmill/rhasspy-go/client/internal/apierrors"
	"github.com/voxmill/rhasspy-go/client/internal/shardqueue"
)

// DefaultSiteID is the site Rhasspy assigns when none is configured.
const DefaultSiteID = "default"

// Say is ASYNC (uses executor); it enqueues a text-to-speech exchange keyed
// by site ID so utterances for one speaker never interleave, and returns as
// soon as the job is accepted. Recoverable failures (5xx, network) are
// retried with exponential backoff; 4xx failures are dropped after the
// executor's error handler sees them.
//
// Use AwaitSiteIdle to wait until everything queued for a site has been
// spoken. Returns ErrBackPressure when the site's queue is full.
func (c *Client) Say(ctx context.Context, siteID, text string) (*SpeakAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if siteID == "" {
		siteID = DefaultSiteID
	}
	if err := ValidateSiteID(siteID); err != nil {
		return nil, err
	}
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	speakJob := shardqueue.JobFunc(func(jobCtx context.Context) error {
		params := url.Values{"repeat": {"false"}, "siteId": {siteID}}
		u := c.baseURL + "/text-to-speech?" + params.Encode()
		httpReq, err := http.NewRequestWithContext(jobCtx, http.MethodPost, u, strings.NewReader(text))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "text/plain")

		resp, err := c.do(httpReq, "text-to-speech")
		if err != nil {
			utterancesFailedTotal.WithLabelValues(siteID).Inc()
			return apierrors.ClassifyNetwork(err)
		}
		defer func() { _ = resp.Body.Close() }()

		if err := checkStatus("say", resp); err != nil {
			utterancesFailedTotal.WithLabelValues(siteID).Inc()
			return apierrors.ClassifyHTTPStatus(resp.StatusCode, err)
		}
		// The server plays the audio on the site's speaker; the WAV body is
		// not needed here, but the connection must be drained for reuse.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	})

	if err := c.exec.Submit(ctx, siteID, speakJob); err != nil {
		if errors.Is(err, shardqueue.ErrQueueFull) {
			return nil, ErrBackPressure
		}
		return nil, err
	}
	utterancesEnqueuedTotal.WithLabelValues(siteID).Inc()

	return &SpeakAck{SiteID: siteID, Status: "enqueued"}, nil
}
