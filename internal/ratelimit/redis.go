package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// allowScript performs the whole check-and-increment server-side so it is
// atomic per key. A counter at the ceiling is left untouched. The key's TTL
// replaces an explicit sweep: expired counters simply disappear.
var allowScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if current and tonumber(current) >= tonumber(ARGV[2]) then
  return 0
end
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return 1
`)

// RedisStore keeps counters in Redis with per-key TTLs. Selected with
// RATE_LIMIT_BACKEND=redis.
type RedisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisStore creates a RedisStore using the given client.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb, prefix: "ratelimit:"}
}

var _ Store = (*RedisStore)(nil)

// Allow implements Store.
func (s *RedisStore) Allow(ctx context.Context, identifier string, window time.Duration, max int) (bool, error) {
	res, err := allowScript.Run(ctx, s.rdb,
		[]string{s.prefix + identifier},
		window.Milliseconds(), max,
	).Int()
	if err != nil {
		return false, fmt.Errorf("ratelimit: redis: %w", err)
	}
	return res == 1, nil
}
