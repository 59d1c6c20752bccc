package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/fitreni/coach-scheduler/internal/config"
	domain "github.com/fitreni/coach-scheduler/internal/domain/booking"
)

// slot snapshots are short-lived; invalidation handles the common case,
// the TTL only bounds staleness if a publish is lost
const availabilityTTL = 5 * time.Minute

func NewClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// AvailabilityCache stores computed slot lists per (coach, service, date).
type AvailabilityCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewAvailabilityCache(rdb *redis.Client, log *zap.Logger) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, log: log}
}

func availabilityKey(coachID, serviceID uint, date string) string {
	return fmt.Sprintf("availability:%d:%d:%s", coachID, serviceID, date)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	coachID uint,
	serviceID uint,
	date string,
) ([]domain.TimeSlot, bool) {

	raw, err := c.rdb.Get(ctx, availabilityKey(coachID, serviceID, date)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("availability cache read failed", zap.Error(err))
		return nil, false
	}

	var slots []domain.TimeSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	coachID uint,
	serviceID uint,
	date string,
	slots []domain.TimeSlot,
) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(
		ctx,
		availabilityKey(coachID, serviceID, date),
		raw,
		availabilityTTL,
	).Err(); err != nil {
		c.log.Warn("availability cache write failed", zap.Error(err))
	}
}

func (c *AvailabilityCache) InvalidateCoach(ctx context.Context, coachID uint) {
	pattern := fmt.Sprintf("availability:%d:*", coachID)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("availability cache delete failed", zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("availability cache scan failed", zap.Error(err))
	}
}
