package ratecache

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// Expiry holds the TTL and the next expiration instant. One Expiry may be
// shared by several caches; whichever cache observes the deadline first
// flushes itself and moves the deadline forward for all of them.
type Expiry struct {
	mu        sync.Mutex
	clock     Clock
	ttl       time.Duration
	hasTTL    bool
	expiresAt time.Time
}

func NewExpiry(clock Clock) *Expiry {
	if clock == nil {
		clock = SystemClock
	}
	return &Expiry{clock: clock}
}

// SetTTL sets the TTL and reschedules the next expiration to now+ttl.
func (e *Expiry) SetTTL(ttl time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ttl = ttl
	e.hasTTL = true
	e.expiresAt = e.clock.Now().Add(ttl)
}

// ClearTTL disables bulk expiry. Careful lookups then treat every entry as
// stale as soon as any time has passed.
func (e *Expiry) ClearTTL() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ttl = 0
	e.hasTTL = false
	e.expiresAt = time.Time{}
}

func (e *Expiry) TTL() (time.Duration, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ttl, e.hasTTL
}

func (e *Expiry) ExpiresAt() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expiresAt
}

// Refresh moves the next expiration to now+ttl and returns it.
func (e *Expiry) Refresh() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.expiresAt = e.clock.Now().Add(e.ttl)
	return e.expiresAt
}

// Expired reports whether a TTL is set and its deadline has been reached.
func (e *Expiry) Expired() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.expiredLocked(e.clock.Now())
}

// advance refreshes the deadline if it has passed. Only one of several
// concurrent callers gets true for a given deadline.
func (e *Expiry) advance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()
	if !e.expiredLocked(now) {
		return false
	}
	e.expiresAt = now.Add(e.ttl)
	return true
}

// stale reports whether an entry created at createdAt is past its TTL.
// An unset TTL counts as zero.
func (e *Expiry) stale(createdAt time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return createdAt.Add(e.ttl).Before(e.clock.Now())
}

func (e *Expiry) now() time.Time {
	return e.clock.Now()
}

func (e *Expiry) expiredLocked(now time.Time) bool {
	return e.hasTTL && !e.expiresAt.After(now)
}
