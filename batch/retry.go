package batch

import (
	"context"
	"time"

	"github.com/fwojciec/pageprofile"
)

// RenderFunc renders a single URL.
type RenderFunc func(ctx context.Context, url string) (*pageprofile.RenderedPage, error)

// DefaultRetryDelays returns the backoff between render attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls render until it succeeds, sleeping delays[i]
// before attempt i+2. Invalid URLs and missing pages are not retried.
func FetchWithRetryDelays(ctx context.Context, url string, render RenderFunc, logf pageprofile.LogFunc, delays []time.Duration) (*pageprofile.RenderedPage, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := render(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		logf.Printf("retry %s (attempt %d): %v", url, attempt+2, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}

func retryable(err error) bool {
	switch pageprofile.ErrorCode(err) {
	case pageprofile.EINVALID, pageprofile.ENOTFOUND:
		return false
	}
	return true
}
