package repositories

import (
	"fmt"
	"time"

	"context"

	"github.com/redis/go-redis/v9"
	"github.com/svolkov/ainotes/internal/logger"
)

// SummaryCacheRepository caches AI-generated text in Redis. Keys include the
// note's updated_at so a modified note never serves a stale generation.
type SummaryCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached generations
}

// NewSummaryCacheRepository creates a new repository instance with a TTL.
func NewSummaryCacheRepository(client *redis.Client, expiration time.Duration) *SummaryCacheRepository {
	return &SummaryCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func cacheKey(kind string, noteID int64, updatedAt time.Time) string {
	return fmt.Sprintf("ai:%s:%d:%d", kind, noteID, updatedAt.Unix())
}

// Get fetches a cached generation for the note, keyed by kind ("summary" or
// "title") and the note's last update instant. A miss returns redis.Nil.
func (r *SummaryCacheRepository) Get(ctx context.Context, kind string, noteID int64, updatedAt time.Time) (string, error) {
	key := cacheKey(kind, noteID, updatedAt)

	val, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("ai cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return val, nil
}

// Set stores a generation for the note with the repository's TTL.
func (r *SummaryCacheRepository) Set(ctx context.Context, kind string, noteID int64, updatedAt time.Time, text string) error {
	key := cacheKey(kind, noteID, updatedAt)

	err := r.client.Set(ctx, key, text, r.exp).Err()

	logger.Log.Infow("ai cache set",
		"key", key,
		"error", err,
	)

	return err
}
