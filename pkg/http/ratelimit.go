package http

import (
	"context"
	"sync"
	"time"
)

// Pacer spaces out requests so that consecutive calls start at least
// minInterval apart. A zero interval never waits.
type Pacer struct {
	mu          sync.Mutex
	next        time.Time
	minInterval time.Duration
}

// NewPacer creates a pacer with the given minimum spacing between requests
func NewPacer(minInterval time.Duration) *Pacer {
	return &Pacer{minInterval: minInterval}
}

// Wait blocks until the next request may start or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil || p.minInterval <= 0 {
		return ctx.Err()
	}

	p.mu.Lock()
	now := time.Now()
	start := now
	if p.next.After(now) {
		start = p.next
	}
	// reserve the slot before sleeping so concurrent callers queue up
	p.next = start.Add(p.minInterval)
	p.mu.Unlock()

	delay := start.Sub(now)
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
