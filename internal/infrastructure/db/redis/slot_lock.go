package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultSlotLockTTL = 10 * time.Second

// releaseScript deletes the key only while it still holds our token, so an
// expired lock re-acquired by another booking is never freed by mistake.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// SlotLocker guards a (date, slot) pair across processes.
// Key format: slot:<date>:<time>
type SlotLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSlotLocker creates a SlotLocker. A non-positive ttl uses the default.
func NewSlotLocker(client *redis.Client, ttl time.Duration) *SlotLocker {
	if ttl <= 0 {
		ttl = defaultSlotLockTTL
	}
	return &SlotLocker{client: client, ttl: ttl}
}

// Acquire sets the lock key if absent. ok is false when someone else holds it.
func (l *SlotLocker) Acquire(ctx context.Context, date, slot string) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key(date, slot), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("slot lock: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *SlotLocker) Release(ctx context.Context, date, slot, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key(date, slot)}, token).Err(); err != nil {
		return fmt.Errorf("slot unlock: %w", err)
	}
	return nil
}

func (l *SlotLocker) key(date, slot string) string {
	return fmt.Sprintf("slot:%s:%s", date, slot)
}
