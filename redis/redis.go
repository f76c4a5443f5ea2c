package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// SlotCacheTTL keeps cached slot lists short-lived: bookings from other
// customers must show up quickly even when the write-side invalidation is
// missed.
const SlotCacheTTL = 30 * time.Second

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// SlotCacheKey is the cache key for a computed slot list.
func SlotCacheKey(petshopID, serviceID uint, date string) string {
	return fmt.Sprintf("slots:%d:%d:%s", petshopID, serviceID, date)
}

// SlotCachePattern matches every slot cache key for a petshop and date,
// whatever the service.
func SlotCachePattern(petshopID uint, date string) string {
	return fmt.Sprintf("slots:%d:*:%s", petshopID, date)
}

// InvalidateSlotCache drops all cached slot lists for the petshop and date.
// A booking or cancellation changes the busy set for every service on that
// date, not just the service booked.
func InvalidateSlotCache(petshopID uint, date string) {
	iter := Client.Scan(Ctx, 0, SlotCachePattern(petshopID, date), 0).Iterator()
	for iter.Next(Ctx) {
		Client.Del(Ctx, iter.Val())
	}
}
