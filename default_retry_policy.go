package simplemessage

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition used by the HTTP
// transport. It retries on HTTP 429 (rate limit) and 5xx server errors, and
// on transient connection errors. It does not retry on context
// cancellation, deadline exceeded, or DNS resolution failures.
//
// Slack reports application errors such as channel_not_found with HTTP 200,
// so those are never retried.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		// Don't retry on context cancellation or deadline exceeded
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		// Don't retry on DNS resolution errors
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		// Retry on other connection errors
		return true
	}

	if r == nil {
		return false
	}

	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
}

// retryAfter honours the Retry-After header Slack sends with 429 responses.
// A zero duration lets resty fall back to its jittered backoff.
func retryAfter(_ *resty.Client, r *resty.Response) (time.Duration, error) {
	if r == nil || r.RawResponse == nil {
		return 0, nil
	}

	value := strings.TrimSpace(r.Header().Get("Retry-After"))
	if value == "" {
		return 0, nil
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0, nil
	}

	return time.Duration(seconds) * time.Second, nil
}
