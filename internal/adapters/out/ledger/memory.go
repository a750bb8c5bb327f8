// Package ledger remembers which shipment idempotency keys the gateway has
// already sent to the delivery partner.
package ledger

import (
	"context"
	"sync"
	"time"
)

// MemoryLedger keeps keys in process memory. It only protects a gateway
// running as a single replica; expired keys are dropped by Purge.
type MemoryLedger struct {
	mu      sync.Mutex
	entries map[string]time.Time
	now     func() time.Time
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// WithClock replaces the time source.
func (l *MemoryLedger) WithClock(now func() time.Time) *MemoryLedger {
	l.now = now
	return l
}

func (l *MemoryLedger) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if expiresAt, ok := l.entries[key]; ok && now.Before(expiresAt) {
		return false, nil
	}

	l.entries[key] = now.Add(ttl)
	return true, nil
}

func (l *MemoryLedger) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.entries, key)
	return nil
}

// Purge drops expired keys and reports how many were removed.
func (l *MemoryLedger) Purge(_ context.Context) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	removed := 0
	for key, expiresAt := range l.entries {
		if !now.Before(expiresAt) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of keys held, expired or not.
func (l *MemoryLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
