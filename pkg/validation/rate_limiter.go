// pkg/validation/rate_limiter.go
package validation

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket rate limiter per input source.
// The engine uses it to throttle click-to-spawn requests so a held
// mouse button cannot flood the simulation with bodies.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	sources     map[string]*sourceLimiter
	mu          sync.RWMutex
	cleanupTick *time.Ticker
	done        chan struct{}
}

// sourceLimiter tracks rate limiting state for a single input source
type sourceLimiter struct {
	tokens     int
	lastRefill time.Time
	maxTokens  int
	window     time.Duration
	mu         sync.Mutex
}

// NewRateLimiter creates a new rate limiter with specified limits
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		sources:     make(map[string]*sourceLimiter),
		done:        make(chan struct{}),
	}

	// Periodically drop idle sources so the map stays bounded.
	rl.cleanupTick = time.NewTicker(window)
	go rl.cleanup()

	return rl
}

// Allow checks if a request should be allowed for the given source ID
func (rl *RateLimiter) Allow(sourceID string) bool {
	rl.mu.RLock()
	limiter, exists := rl.sources[sourceID]
	rl.mu.RUnlock()

	if !exists {
		limiter = &sourceLimiter{
			tokens:     rl.maxRequests,
			lastRefill: time.Now(),
			maxTokens:  rl.maxRequests,
			window:     rl.window,
		}
		rl.mu.Lock()
		rl.sources[sourceID] = limiter
		rl.mu.Unlock()
	}

	return limiter.consume()
}

// consume attempts to consume a token from the source's bucket
func (sl *sourceLimiter) consume() bool {
	sl.mu.Lock()
	defer sl.mu.Unlock()

	now := time.Now()

	// Refill proportionally to the fraction of the window that elapsed.
	elapsed := now.Sub(sl.lastRefill)
	if elapsed > 0 && sl.tokens < sl.maxTokens {
		windowsPassed := float64(elapsed) / float64(sl.window)
		tokensToAdd := int(float64(sl.maxTokens) * windowsPassed)

		if tokensToAdd > 0 {
			sl.tokens += tokensToAdd
			if sl.tokens > sl.maxTokens {
				sl.tokens = sl.maxTokens
			}
			sl.lastRefill = now
		}
	}

	if sl.tokens > 0 {
		sl.tokens--
		return true
	}

	return false
}

// cleanup removes inactive sources to prevent memory leaks
func (rl *RateLimiter) cleanup() {
	for {
		select {
		case <-rl.cleanupTick.C:
			rl.removeInactiveSources()
		case <-rl.done:
			return
		}
	}
}

// removeInactiveSources removes sources that haven't been active for 2 windows
func (rl *RateLimiter) removeInactiveSources() {
	cutoff := time.Now().Add(-2 * rl.window)

	rl.mu.Lock()
	for sourceID, limiter := range rl.sources {
		limiter.mu.Lock()
		if limiter.lastRefill.Before(cutoff) {
			delete(rl.sources, sourceID)
		}
		limiter.mu.Unlock()
	}
	rl.mu.Unlock()
}

// Close stops the rate limiter and cleans up resources
func (rl *RateLimiter) Close() {
	close(rl.done)
	rl.cleanupTick.Stop()
}
