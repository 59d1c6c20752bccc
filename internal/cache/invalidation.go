package cache

import (
	"context"
	"strconv"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// availabilityChannel carries "booking or block data changed for coach N"
// signals. The payload is only the coach id; subscribers re-fetch, they
// never trust pushed data.
const availabilityChannel = "availability:changed"

// InvalidationBus publishes and subscribes availability-change signals
// over redis pub/sub. It also clears the snapshot cache on publish so a
// subscriber's re-fetch never sees the stale entry.
type InvalidationBus struct {
	rdb   *redis.Client
	cache *AvailabilityCache
	log   *zap.Logger
}

func NewInvalidationBus(rdb *redis.Client, cache *AvailabilityCache, log *zap.Logger) *InvalidationBus {
	return &InvalidationBus{rdb: rdb, cache: cache, log: log}
}

func (b *InvalidationBus) Publish(ctx context.Context, coachID uint) {
	b.cache.InvalidateCoach(ctx, coachID)

	if err := b.rdb.Publish(
		ctx,
		availabilityChannel,
		strconv.FormatUint(uint64(coachID), 10),
	).Err(); err != nil {
		b.log.Warn("availability invalidation publish failed", zap.Error(err))
	}
}

// Subscribe returns a channel that receives the coach id of every
// published invalidation until ctx is done.
func (b *InvalidationBus) Subscribe(ctx context.Context) <-chan uint {
	out := make(chan uint, 16)

	sub := b.rdb.Subscribe(ctx, availabilityChannel)

	go func() {
		defer close(out)
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				id, err := strconv.ParseUint(msg.Payload, 10, 64)
				if err != nil {
					continue
				}
				select {
				case out <- uint(id):
				default:
					// slow subscriber: drop, the next signal re-triggers
				}
			}
		}
	}()

	return out
}
