package middleware

import (
	"fmt"
	"testing"
	"time"
)

func TestClientLimiterEvictsIdleClients(t *testing.T) {
	l := newClientLimiter(1, 1, time.Minute)
	start := time.Now()

	l.Allow("idle", start)

	// enough calls from a second client to trigger a sweep after the idle client has expired
	later := start.Add(2 * time.Minute)
	for i := range evictEvery {
		l.Allow(fmt.Sprintf("busy-%d", i%2), later)
	}

	l.mu.Lock()
	_, ok := l.byClient["idle"]
	l.mu.Unlock()
	if ok {
		t.Error("idle client should have been evicted")
	}
	if got := l.size(); got != 2 {
		t.Errorf("clients: got %d, want 2", got)
	}
}

func TestClientLimiterRefills(t *testing.T) {
	l := newClientLimiter(1, 1, time.Minute)
	now := time.Now()

	if !l.Allow("a", now) {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("a", now) {
		t.Fatal("second request in the same instant should be denied")
	}
	if !l.Allow("a", now.Add(time.Second)) {
		t.Error("request after the refill interval should be allowed")
	}
}
