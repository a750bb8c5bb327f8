package ledger

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "shipment:idempotency:"

// RedisLedger shares keys between every gateway replica. SET NX makes the
// claim atomic and the ttl lets Redis expire keys on its own.
type RedisLedger struct {
	client redis.UniversalClient
}

func NewRedisLedger(client redis.UniversalClient) *RedisLedger {
	return &RedisLedger{client: client}
}

func (l *RedisLedger) MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, keyPrefix+key, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

func (l *RedisLedger) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, keyPrefix+key).Err()
}

// Ping checks that Redis is reachable.
func (l *RedisLedger) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}
