package api

import (
	"context"
	"errors"
	"log"
	"net/url"
	"time"
)

// RetryPolicy is an explicit retry loop around a transport call. Retries
// are strictly sequential: a later attempt never starts before the prior
// attempt's outcome is known.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// IsRetryable classifies an error as transient or terminal.
	IsRetryable func(error) bool
	// Backoff returns the delay before retry attempt k (1-indexed).
	Backoff func(attempt int) time.Duration
	// Sleep waits out the backoff delay. Defaults to time.Sleep;
	// tests inject a recorder here.
	Sleep func(time.Duration)
}

// Do runs fn, retrying on transient errors until the budget is exhausted.
// The last error propagates. A context error from fn is terminal.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	isRetryable := p.IsRetryable
	if isRetryable == nil {
		isRetryable = IsRetryable
	}
	backoff := p.Backoff
	if backoff == nil {
		backoff = ExponentialBackoff
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var err error
	for attempt := 1; ; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		if attempt > p.MaxRetries || !isRetryable(err) {
			return err
		}
		delay := backoff(attempt)
		log.Printf("[retry] %s attempt %d failed: %v (retrying in %s)", op, attempt, err, delay)
		sleep(delay)
	}
}

// IsRetryable reports whether an error is a transient transport failure:
// a 5xx response or a network-level error with no response at all. 4xx
// responses and everything downstream of a successful response (decoding,
// validation) are terminal.
func IsRetryable(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// ExponentialBackoff returns the delay before retry attempt k: 2^k seconds
// (2s, 4s, 8s, ...).
func ExponentialBackoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return time.Duration(1<<uint(attempt)) * time.Second
}
