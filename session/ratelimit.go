package session

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter provides per-host rate limiting using token buckets. Navigation
// hits the search engine once and the Q&A site once per cache miss, but
// rapid advancing through candidates without pacing is how scrapers get
// served captchas.
type Limiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewLimiter creates a Limiter with the specified requests per second
// limit. Each host gets its own bucket with a burst of 1.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the URL's host.
// Returns an error if the context is canceled before the wait completes.
// Unparseable URLs are not limited; the fetch will fail on its own terms.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil
	}

	l.mu.Lock()
	limiter, ok := l.limiters[u.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.rps), 1)
		l.limiters[u.Host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
