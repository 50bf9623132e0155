package batch

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/pageprofile"
	"golang.org/x/time/rate"
)

var _ pageprofile.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter holds one token bucket per site. Hosts are keyed without
// port, case or a leading "www." so acme.com and WWW.Acme.com:443 share
// a bucket.
type DomainLimiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst lets n requests to a fresh site through before pacing starts.
// Values below 1 are ignored.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.burst = n
		}
	}
}

// NewDomainLimiter paces each site to rps requests per second. A
// non-positive rps disables pacing.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		rps:     rate.Limit(rps),
		burst:   1,
		buckets: make(map[string]*rate.Limiter),
	}
	if rps <= 0 {
		d.rps = rate.Inf
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until the site behind host may be requested again.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	return d.bucket(siteKey(host)).Wait(ctx)
}

func (d *DomainLimiter) bucket(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(d.rps, d.burst)
		d.buckets[key] = b
	}
	return b
}

func siteKey(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.Contains(host[i:], "]") {
		host = host[:i]
	}
	return strings.TrimPrefix(host, "www.")
}
