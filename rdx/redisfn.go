package rdx

import (
	"time"

	"tripweaver/globals"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

// Connect wires the shared redis client. Cache helpers below degrade to
// errors the callers log and ignore; redis being down never fails a
// request.
func Connect(addr string) error {
	Conn = redis.NewClient(&redis.Options{Addr: addr})
	return Conn.Ping(globals.Ctx).Err()
}

func RdxGet(key string) (string, error) {
	return Conn.Get(globals.Ctx, key).Result()
}

func SetWithExpiry(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}
