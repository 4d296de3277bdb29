// README: Optional Redis cache for completed plans, keyed by request hash.
package planner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlanCache stores finished PlanStates so an identical request within the TTL
// replays the stored plan instead of re-running the pipeline. A nil redis
// client disables the cache entirely.
type PlanCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewPlanCache(client *redis.Client, ttl time.Duration) *PlanCache {
	return &PlanCache{redis: client, ttl: ttl}
}

func cacheKey(userInput string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(userInput))))
	return "voyager:plan:" + hex.EncodeToString(sum[:])
}

// Get returns the cached plan for the input, if any.
func (c *PlanCache) Get(ctx context.Context, userInput string) (*PlanState, bool) {
	if c == nil || c.redis == nil {
		return nil, false
	}
	v, err := c.redis.Get(ctx, cacheKey(userInput)).Bytes()
	if err != nil {
		return nil, false
	}
	var state PlanState
	if err := json.Unmarshal(v, &state); err != nil {
		return nil, false
	}
	return &state, true
}

// Set stores the plan under the input's key. Failures are ignored: the cache
// is an optimization, never a dependency.
func (c *PlanCache) Set(ctx context.Context, userInput string, state *PlanState) {
	if c == nil || c.redis == nil {
		return
	}
	b, err := json.Marshal(state)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, cacheKey(userInput), b, c.ttl).Err()
}
