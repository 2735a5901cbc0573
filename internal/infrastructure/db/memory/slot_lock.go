package memory

import (
	"context"
	"sync"
)

// SlotLocker is the in-process slot guard used when no Redis is configured.
// It only serialises bookings inside one process.
type SlotLocker struct {
	mu   sync.Mutex
	held map[string]string
}

func NewSlotLocker() *SlotLocker {
	return &SlotLocker{held: make(map[string]string)}
}

func (l *SlotLocker) Acquire(_ context.Context, date, slot string) (string, bool, error) {
	key := date + "|" + slot

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, busy := l.held[key]; busy {
		return "", false, nil
	}
	token := newID()
	l.held[key] = token
	return token, true, nil
}

// Release frees the slot if token still owns it.
func (l *SlotLocker) Release(_ context.Context, date, slot, token string) error {
	key := date + "|" + slot

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held[key] == token {
		delete(l.held, key)
	}
	return nil
}
