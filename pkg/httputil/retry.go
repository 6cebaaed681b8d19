package httputil

import (
	"context"
	"errors"
	"time"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
)

// MaxRetryAfter caps the wait an upstream can ask for with Retry-After.
const MaxRetryAfter = 30 * time.Second

// RetryableError marks a transient upstream failure (transport error, 429,
// 5xx) that [Retry] should attempt again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retry runs fn up to attempts times. Only errors wrapped in
// [RetryableError] are retried; anything else is returned at once.
//
// The wait before the next attempt is the Retry-After of a
// [lserrors.RateLimitedError] in the chain, capped at [MaxRetryAfter], or
// else delay, which doubles after every failure. A cancelled ctx ends the
// wait with ctx.Err().
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i == attempts-1 {
			break
		}
		wait := delay
		if ra, ok := retryAfter(lastErr); ok {
			wait = ra
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
			delay *= 2
		}
	}
	return lastErr
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// retryAfter returns the server-requested wait carried by err, if any.
func retryAfter(err error) (time.Duration, bool) {
	var rl *lserrors.RateLimitedError
	if !errors.As(err, &rl) || rl.RetryAfter <= 0 {
		return 0, false
	}
	return min(time.Duration(rl.RetryAfter)*time.Second, MaxRetryAfter), true
}
