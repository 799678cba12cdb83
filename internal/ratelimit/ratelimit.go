package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/deusflow/newspost/internal/logger"
)

// ErrLimitExceeded is returned by Use once a provider or the total budget is spent.
var ErrLimitExceeded = errors.New("ai rate limit exceeded")

const resetWindow = 24 * time.Hour

// Limiter keeps daily request budgets for every LLM provider plus a shared
// total. A limit of 0 means unlimited.
type Limiter struct {
	mu         sync.Mutex
	limits     map[string]int
	counts     map[string]int
	maxTotal   int
	totalCount int
	resetTime  time.Time
	now        func() time.Time
}

// New creates a limiter. limits is keyed by provider name, e.g. "gemini".
func New(limits map[string]int, maxTotal int) *Limiter {
	l := &Limiter{
		limits:   make(map[string]int, len(limits)),
		counts:   make(map[string]int),
		maxTotal: maxTotal,
		now:      time.Now,
	}
	for name, limit := range limits {
		l.limits[name] = limit
	}
	l.resetTime = l.now().Add(resetWindow)
	return l
}

// Allow reports whether provider may make another request right now.
func (l *Limiter) Allow(provider string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset()
	return l.check(provider) == nil
}

// Use records one request for provider, or returns ErrLimitExceeded.
func (l *Limiter) Use(provider string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkReset()
	if err := l.check(provider); err != nil {
		logger.Warn("AI rate limit reached", "provider", provider, "error", err)
		return err
	}

	l.counts[provider]++
	l.totalCount++
	logger.Debug("AI usage", "provider", provider, "used", l.counts[provider], "limit", l.limits[provider],
		"total", l.totalCount, "total_limit", l.maxTotal)
	return nil
}

func (l *Limiter) check(provider string) error {
	if limit := l.limits[provider]; limit > 0 && l.counts[provider] >= limit {
		return fmt.Errorf("%s: %w (%d/%d)", provider, ErrLimitExceeded, l.counts[provider], limit)
	}
	if l.maxTotal > 0 && l.totalCount >= l.maxTotal {
		return fmt.Errorf("total: %w (%d/%d)", ErrLimitExceeded, l.totalCount, l.maxTotal)
	}
	return nil
}

// GetStats returns current usage for the metrics endpoint.
func (l *Limiter) GetStats() map[string]interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	stats := map[string]interface{}{
		"total_used":  l.totalCount,
		"total_limit": l.maxTotal,
		"reset_time":  l.resetTime.Format(time.RFC3339),
	}
	for name, limit := range l.limits {
		stats[name+"_used"] = l.counts[name]
		stats[name+"_limit"] = limit
	}
	return stats
}

// checkReset clears the counters once the daily window has passed.
func (l *Limiter) checkReset() {
	if l.now().Before(l.resetTime) {
		return
	}
	logger.Info("Resetting AI rate limiter counters", "total_used", l.totalCount)
	l.counts = make(map[string]int)
	l.totalCount = 0
	l.resetTime = l.now().Add(resetWindow)
}
