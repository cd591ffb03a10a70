package dao

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"swap-backend/model"
	"swap-backend/usecase"
)

const interestCountsKey = "interests:counts"

// CachedInterestRepository keeps the per-category interest counts used by
// suggestions in a Redis hash. Writes through Replace drop the hash.
type CachedInterestRepository struct {
	next   usecase.InterestRepository
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

func NewCachedInterestRepository(next usecase.InterestRepository, client *redis.Client, ttl time.Duration, logger *log.Logger) *CachedInterestRepository {
	return &CachedInterestRepository{next: next, client: client, ttl: ttl, logger: logger}
}

func (r *CachedInterestRepository) ListByUser(ctx context.Context, userID string) ([]model.Category, error) {
	return r.next.ListByUser(ctx, userID)
}

func (r *CachedInterestRepository) Replace(ctx context.Context, userID string, categoryIDs []string) error {
	if err := r.next.Replace(ctx, userID, categoryIDs); err != nil {
		return err
	}
	if err := r.client.Del(ctx, interestCountsKey).Err(); err != nil {
		r.logger.Printf("interest cache: invalidate: %v", err)
	}
	return nil
}

func (r *CachedInterestRepository) CountByCategory(ctx context.Context) (map[string]int, error) {
	cached, err := r.client.HGetAll(ctx, interestCountsKey).Result()
	if err != nil {
		r.logger.Printf("interest cache: read: %v", err)
	} else if len(cached) > 0 {
		if counts, ok := parseCounts(cached); ok {
			return counts, nil
		}
	}

	counts, err := r.next.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return counts, nil
	}

	values := make(map[string]interface{}, len(counts))
	for id, n := range counts {
		values[id] = n
	}
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, interestCountsKey)
	pipe.HSet(ctx, interestCountsKey, values)
	pipe.Expire(ctx, interestCountsKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Printf("interest cache: write: %v", err)
	}
	return counts, nil
}

func parseCounts(raw map[string]string) (map[string]int, bool) {
	counts := make(map[string]int, len(raw))
	for id, v := range raw {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false
		}
		counts[id] = n
	}
	return counts, true
}
