// Package httputil provides HTTP utilities for the upstream clients.
//
// # Retry
//
// [Retry] runs an operation with exponential backoff, retrying only errors
// wrapped in [RetryableError]. Clients wrap transient failures (connection
// errors, 5xx responses, 429 rate limits) and return everything else as-is:
//
//	err := httputil.Retry(ctx, 3, 500*time.Millisecond, func() error {
//	    return fetch(ctx)
//	})
//
// A not-found answer is never retryable; it is a normal outcome for manifest
// probing and license lookups.
package httputil
