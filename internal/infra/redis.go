// README: Redis client initialization for the plan cache.
package infra

import "github.com/redis/go-redis/v9"

// NewRedis returns a client for addr, or nil when addr is empty (cache disabled).
func NewRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
