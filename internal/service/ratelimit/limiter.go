package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per client key.
type Limiter struct {
	mu    sync.Mutex
	m     map[string]*entry
	limit rate.Limit
	burst int
	idle  time.Duration
	now   func() time.Time
}

// New allows `every` spacing between events per key with the given burst.
// Buckets unused for idle are dropped.
func New(every time.Duration, burst int, idle time.Duration) *Limiter {
	lim := rate.Inf
	if every > 0 {
		lim = rate.Every(every)
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		m:     make(map[string]*entry),
		limit: lim,
		burst: burst,
		idle:  idle,
		now:   time.Now,
	}
}

// Allow reports whether one event for key may happen now.
func (l *Limiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepLocked(now)
	e, ok := l.m[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.m[key] = e
	}
	e.lastSeen = now
	return e.lim.AllowN(now, 1)
}

func (l *Limiter) sweepLocked(now time.Time) {
	if l.idle <= 0 {
		return
	}
	for k, e := range l.m {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.m, k)
		}
	}
}
