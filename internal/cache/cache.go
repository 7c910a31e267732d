package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/atelierbarbier/reservation-api/internal/domain/reservation"
)

// Availability answers are cheap to recompute, so a short TTL plus
// invalidation on every write keeps the cache honest. Schedule and
// time-off rows are read-mostly admin data; eventual visibility before
// the next query is acceptable.
const availabilityTTL = 60 * time.Second

type Cache struct {
	rdb *redis.Client
}

// New returns nil when no Redis address is configured or the server is
// unreachable; callers treat a nil cache as disabled.
func New(addr string) *Cache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, caching disabled: %v", addr, err)
		return nil
	}

	return &Cache{rdb: rdb}
}

func availabilityKey(barberID, dateKey, serviceID string) string {
	return fmt.Sprintf("avail:%s:%s:%s", barberID, dateKey, serviceID)
}

func (c *Cache) GetAvailability(
	ctx context.Context,
	barberID, serviceID, dateKey string,
) (*domain.AvailabilityResult, bool) {

	raw, err := c.rdb.Get(ctx, availabilityKey(barberID, dateKey, serviceID)).Result()
	if err != nil {
		return nil, false
	}

	var res domain.AvailabilityResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, false
	}

	return &res, true
}

func (c *Cache) SetAvailability(
	ctx context.Context,
	barberID, serviceID, dateKey string,
	res *domain.AvailabilityResult,
) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, availabilityKey(barberID, dateKey, serviceID), raw, availabilityTTL).Err(); err != nil {
		log.Printf("cache set failed: %v", err)
	}
}

// InvalidateBarber drops every cached day for the barber. Key volume is
// tiny (one per barber/date/service actually queried), so KEYS is fine.
func (c *Cache) InvalidateBarber(ctx context.Context, barberID string) {
	keys, err := c.rdb.Keys(ctx, fmt.Sprintf("avail:%s:*", barberID)).Result()
	if err != nil || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidation failed for barber %s: %v", barberID, err)
	}
}
