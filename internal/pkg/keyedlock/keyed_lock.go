package keyedlock

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"gasdelivery/internal/pkg/errs"
)

// DefaultWait bounds how long Acquire blocks on a contended key before
// giving up with a concurrency conflict.
const DefaultWait = 3 * time.Second

// KeyedLock serializes work per key while leaving unrelated keys fully
// concurrent. Mutations on the same order share a key and therefore run one
// at a time; a caller that cannot acquire the key within the configured wait
// receives a ConcurrencyConflictError instead of queuing indefinitely.
//
// Entries are reference-counted and removed once the last holder releases,
// so the lock table stays proportional to in-flight work.
type KeyedLock struct {
	mu      sync.Mutex
	entries map[string]*entry
	wait    time.Duration
}

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// NewKeyedLock creates a KeyedLock with the given maximum wait per
// acquisition. A non-positive wait falls back to DefaultWait.
func NewKeyedLock(wait time.Duration) *KeyedLock {
	if wait <= 0 {
		wait = DefaultWait
	}
	return &KeyedLock{
		entries: make(map[string]*entry),
		wait:    wait,
	}
}

// Acquire takes the lock for key, blocking up to the configured wait. It
// returns a release function on success. Context cancellation and wait
// exhaustion both surface as a ConcurrencyConflictError carrying the key.
func (l *KeyedLock) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	if err := e.sem.Acquire(waitCtx, 1); err != nil {
		l.put(key, e)
		return nil, errs.NewConcurrencyConflictErrorWithCause("key", key, err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			e.sem.Release(1)
			l.put(key, e)
		})
	}
	return release, nil
}

func (l *KeyedLock) put(key string, e *entry) {
	l.mu.Lock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
	l.mu.Unlock()
}
