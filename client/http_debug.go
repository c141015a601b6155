package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport logs full HTTP traffic for troubleshooting. It also stamps
// each outgoing request with an X-Request-Id so traffic can be correlated
// with server-side logs.
//
// Activation: WithDebugLogging(true), or RHASSPY_DEBUG=true / DEBUG=true.
// Dumps include request and response bodies; do not enable in production.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	reqID := uuid.NewString()
	cloned.Header.Set("X-Request-Id", reqID)

	if debugLoggingRequested() {
		if reqDump, err := httputil.DumpRequestOut(cloned, true); err == nil {
			log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
		}
	}

	resp, err := dt.base.RoundTrip(cloned)
	if err != nil {
		if debugLoggingRequested() {
			log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		}
		return nil, err
	}

	if debugLoggingRequested() {
		if respDump, err := httputil.DumpResponse(resp, true); err == nil {
			log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
		}
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
// RHASSPY_DEBUG targets this SDK alone; DEBUG follows broader app debugging.
func debugLoggingRequested() bool {
	return os.Getenv("RHASSPY_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
