package ratelimit

import (
	"math"
	"sync"
	"time"
)

type Result struct {
	Allowed           bool      `json:"allowed"`
	Limit             int       `json:"limit"`
	Remaining         int       `json:"remaining"`
	ResetTime         time.Time `json:"reset_time"`
	RetryAfterSeconds int       `json:"retry_after_seconds,omitempty"`
}

type Stats struct {
	Tracked int `json:"tracked"`
	Active  int `json:"active"`
	Expired int `json:"expired"`
}

type entry struct {
	requestCount int
	windowStart  time.Time
}

// Limiter is a fixed-window request counter keyed by client identifier. The
// window re-anchors on the first request after expiry rather than on a clock
// boundary, which allows a burst of up to twice the limit around a boundary.
// State is process-lifetime only.
type Limiter struct {
	mu           sync.Mutex
	entries      map[string]*entry
	maxRequests  int
	window       time.Duration
	timeProvider func() time.Time
}

type Opts struct {
	TimeProvider func() time.Time
}

func NewLimiter(maxRequests int, window time.Duration, opts *Opts) *Limiter {
	timeProvider := time.Now
	if opts != nil && opts.TimeProvider != nil {
		timeProvider = opts.TimeProvider
	}
	return &Limiter{
		entries:      make(map[string]*entry),
		maxRequests:  maxRequests,
		window:       window,
		timeProvider: timeProvider,
	}
}

// Check consumes one request from clientID's quota when allowed. A blocked
// check never increments the counter.
func (l *Limiter) Check(clientID string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider()

	e, ok := l.entries[clientID]
	if !ok {
		e = &entry{windowStart: now}
		l.entries[clientID] = e
	} else if now.Sub(e.windowStart) >= l.window {
		e.requestCount = 0
		e.windowStart = now
	}

	allowed := e.requestCount < l.maxRequests
	if allowed {
		e.requestCount++
	}

	return l.buildResult(e, now, allowed)
}

// Peek reports clientID's quota without consuming it or creating an entry.
// Unknown and expired identifiers are reported against a hypothetical fresh
// window starting now.
func (l *Limiter) Peek(clientID string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider()

	e, ok := l.entries[clientID]
	if !ok || now.Sub(e.windowStart) >= l.window {
		return Result{
			Allowed:   true,
			Limit:     l.maxRequests,
			Remaining: l.maxRequests,
			ResetTime: now.Add(l.window),
		}
	}

	allowed := e.requestCount < l.maxRequests
	return l.buildResult(e, now, allowed)
}

// Clear removes a single identifier's entry, reporting whether one existed.
func (l *Limiter) Clear(clientID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.entries[clientID]
	if ok {
		delete(l.entries, clientID)
	}
	return ok
}

func (l *Limiter) ClearAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = make(map[string]*entry)
}

func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider()
	stats := Stats{Tracked: len(l.entries)}
	for _, e := range l.entries {
		if now.Sub(e.windowStart) >= l.window {
			stats.Expired++
		} else {
			stats.Active++
		}
	}
	return stats
}

// Sweep removes all entries whose window has expired and returns the removed
// count. There is no internal scheduling; a caller must drive it.
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.timeProvider()
	removed := 0
	for id, e := range l.entries {
		if now.Sub(e.windowStart) >= l.window {
			delete(l.entries, id)
			removed++
		}
	}
	return removed
}

func (l *Limiter) buildResult(e *entry, now time.Time, allowed bool) Result {
	remaining := l.maxRequests - e.requestCount
	if remaining < 0 {
		remaining = 0
	}

	resetTime := e.windowStart.Add(l.window)

	result := Result{
		Allowed:   allowed,
		Limit:     l.maxRequests,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		result.RetryAfterSeconds = int(math.Ceil(float64(resetTime.Sub(now).Milliseconds()) / 1000.0))
	}
	return result
}
