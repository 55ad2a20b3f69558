// Package throttle tracks failed login attempts per (client address, email)
// key and locks a key out after too many failures inside a rolling window.
//
// State is process-local and is lost on restart; a horizontally scaled
// deployment throttles per instance.
package throttle

import (
	"sync"
	"time"
)

// Status is the outcome of a Check call. RetryAfterMinutes is only set
// when Allowed is false, rounded up to whole minutes with a floor of 1.
type Status struct {
	Allowed           bool
	RetryAfterMinutes int
}

// Limiter counts login failures per key. Implementations must be safe for
// concurrent use; updates to one key must never be lost, and distinct keys
// must not serialize against each other.
type Limiter interface {
	RecordFailure(key string)
	RecordSuccess(key string)
	Check(key string) Status
}

// Key builds the composite throttle key from a client address and an
// already-normalized email.
func Key(clientAddr, email string) string {
	return clientAddr + ":" + email
}

type entry struct {
	mu        sync.Mutex
	failures  int
	lastEvent time.Time
}

// MemoryLimiter is the default in-process Limiter: a concurrent map of
// per-key counters. Entries are created lazily and never evicted; once the
// lock window has elapsed they are inert.
type MemoryLimiter struct {
	maxFailures int
	lockWindow  time.Duration
	now         func() time.Time
	entries     sync.Map // key -> *entry
}

func NewMemoryLimiter(maxFailures int, lockWindow time.Duration, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		maxFailures: maxFailures,
		lockWindow:  lockWindow,
		now:         now,
	}
}

func (l *MemoryLimiter) get(key string) *entry {
	if e, ok := l.entries.Load(key); ok {
		return e.(*entry)
	}
	e, _ := l.entries.LoadOrStore(key, &entry{})
	return e.(*entry)
}

func (l *MemoryLimiter) RecordFailure(key string) {
	e := l.get(key)
	e.mu.Lock()
	e.failures++
	e.lastEvent = l.now()
	e.mu.Unlock()
}

func (l *MemoryLimiter) RecordSuccess(key string) {
	e := l.get(key)
	e.mu.Lock()
	e.failures = 0
	e.lastEvent = l.now()
	e.mu.Unlock()
}

// Check reports whether a login attempt for key may proceed. The lock
// window is anchored to the most recent recorded event, not to the first
// failure of a burst, so a failure late in a lock extends it.
func (l *MemoryLimiter) Check(key string) Status {
	v, ok := l.entries.Load(key)
	if !ok {
		return Status{Allowed: true}
	}
	e := v.(*entry)
	e.mu.Lock()
	failures := e.failures
	lastEvent := e.lastEvent
	e.mu.Unlock()

	if failures < l.maxFailures {
		return Status{Allowed: true}
	}
	elapsed := l.now().Sub(lastEvent)
	if elapsed >= l.lockWindow {
		return Status{Allowed: true}
	}
	remaining := l.lockWindow - elapsed
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}
	return Status{Allowed: false, RetryAfterMinutes: minutes}
}
