package client

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrBackPressure is returned when the client's internal shard queue is full.
var ErrBackPressure = errors.New("back-pressure (queue full)")

// IsBackPressure reports whether err is a back-pressure error.
func IsBackPressure(err error) bool { return errors.Is(err, ErrBackPressure) }

// StatusError reports a non-success HTTP status from the Rhasspy server.
// Body carries up to the first few KB of the response for diagnostics.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// IsStatus reports whether err is a StatusError with the given status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}

// DecodeError reports a response body that could not be decoded as JSON.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsConnectionError reports whether err comes from the network layer rather
// than from the server (no HTTP exchange completed). Context cancellation is
// not a connection error.
func IsConnectionError(err error) bool {
	var se *StatusError
	var de *DecodeError
	if errors.As(err, &se) || errors.As(err, &de) {
		return false
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}
