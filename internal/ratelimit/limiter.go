// Package ratelimit provides per-client token-bucket rate limiting for the mutating API routes.
package ratelimit

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// Limiter tracks per-key request rates using a token bucket algorithm.
type Limiter struct {
	rate  rate.Limit
	burst int
	keys  sync.Map // map[string]*entry

	staleAfter time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

const (
	cleanupEvery      = 60 * time.Second
	defaultStaleAfter = 5 * time.Minute
)

// New creates a Limiter that allows r requests per second with the given burst size.
// A background goroutine evicts keys idle for more than five minutes.
// Call Stop to release resources.
func New(r float64, burst int) *Limiter {
	l := &Limiter{
		rate:       rate.Limit(r),
		burst:      burst,
		staleAfter: defaultStaleAfter,
		stop:       make(chan struct{}),
	}
	go l.cleanup(cleanupEvery)

	return l
}

// Allow reports whether a request from key should be permitted now.
func (l *Limiter) Allow(key string) bool {
	now := time.Now()
	v, ok := l.keys.Load(key)
	if !ok {
		v, _ = l.keys.LoadOrStore(key, &entry{limiter: rate.NewLimiter(l.rate, l.burst)})
	}
	e := v.(*entry)
	e.lastSeen.Store(now.UnixNano())

	return e.limiter.AllowN(now, 1)
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	n := 0
	l.keys.Range(func(_, _ any) bool {
		n++
		return true
	})

	return n
}

// Stop terminates the background cleanup goroutine. Safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.evict(now)
		}
	}
}

// evict drops keys not seen since now-staleAfter.
func (l *Limiter) evict(now time.Time) {
	cutoff := now.Add(-l.staleAfter).UnixNano()
	l.keys.Range(func(key, value any) bool {
		if value.(*entry).lastSeen.Load() < cutoff {
			l.keys.Delete(key)
		}
		return true
	})
}

// ClientIP returns the host part of r.RemoteAddr (after chi's RealIP, the forwarded address).
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
