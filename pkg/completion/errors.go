package completion

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUpstreamUnavailable indicates a network failure or 5xx from the provider
	ErrUpstreamUnavailable = errors.New("completion upstream unavailable")

	// ErrUpstreamRejected indicates the provider rejected the request (auth/4xx)
	ErrUpstreamRejected = errors.New("completion upstream rejected request")

	// ErrUpstreamThrottled indicates the provider rate-limited the request
	ErrUpstreamThrottled = errors.New("completion upstream throttled")

	// ErrEmptyCompletion indicates the provider returned no usable candidates
	ErrEmptyCompletion = errors.New("empty completion response")
)

// UpstreamError wraps provider-specific failures with the provider name.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps an HTTP status code to the error taxonomy.
// Network-level failures (no status at all) are ErrUpstreamUnavailable.
func ClassifyStatus(statusCode int, detail string) error {
	switch {
	case statusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrUpstreamThrottled, detail)
	case statusCode >= 500:
		return fmt.Errorf("%w: status %d: %s", ErrUpstreamUnavailable, statusCode, detail)
	case statusCode >= 400:
		return fmt.Errorf("%w: status %d: %s", ErrUpstreamRejected, statusCode, detail)
	default:
		return fmt.Errorf("%w: unexpected status %d: %s", ErrUpstreamUnavailable, statusCode, detail)
	}
}
