package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiter applies a token bucket per client key and evicts clients that have been idle for idleTTL.
type clientLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu       sync.Mutex
	byClient map[string]*clientEntry
	hits     uint64
}

type clientEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// evictEvery is the number of Allow calls between idle sweeps
const evictEvery = 512

func newClientLimiter(rps float64, burst int, idleTTL time.Duration) *clientLimiter {
	return &clientLimiter{
		limit:    rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
		byClient: make(map[string]*clientEntry),
	}
}

// Allow reports whether one request from client may proceed at now
func (l *clientLimiter) Allow(client string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.byClient[client]
	if !ok {
		e = &clientEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byClient[client] = e
	}
	e.lastSeen = now
	allowed := e.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%evictEvery == 0 {
		l.evictIdle(now)
	}

	return allowed
}

// evictIdle removes clients not seen since now-idleTTL. Callers must hold l.mu.
func (l *clientLimiter) evictIdle(now time.Time) {
	cutoff := now.Add(-l.idleTTL)
	for k, v := range l.byClient {
		if v.lastSeen.Before(cutoff) {
			delete(l.byClient, k)
		}
	}
}

func (l *clientLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.byClient)
}
