package ebay

import (
	"errors"
	"fmt"
)

// ErrAuthFailure is returned when the access token cannot be renewed. It is
// fatal for the request that needed the token and is never retried.
var ErrAuthFailure = errors.New("eBay authentication failed")

// UpstreamError is returned when a marketplace API answers with a
// non-success response. Body carries the upstream response verbatim.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("eBay %s API error (status %d): %s", e.Endpoint, e.StatusCode, e.Body)
}

// IsUpstreamError reports whether err wraps an *UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
