package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"jpereira7/Trivia-Night/internal/game"
	"jpereira7/Trivia-Night/internal/play"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("repository.playstate")

// redisPlayStateRepository keeps play snapshots in Redis, for deployments
// where progress should survive the client process (shared kiosks). It
// implements play.Cache.
type redisPlayStateRepository struct {
	rdb *redis.Client
}

// NewPlayStateRepository creates a new Redis-based play-state cache.
func NewPlayStateRepository(rdb *redis.Client) play.Cache {
	return &redisPlayStateRepository{rdb: rdb}
}

// Get retrieves the cached snapshot for a game, or (nil, nil) on a miss.
func (r *redisPlayStateRepository) Get(ctx context.Context, gameID string) (*game.Game, error) {
	ctx, span := tracer.Start(ctx, "PlayStateRepository.Get")
	defer span.End()

	data, err := r.rdb.Get(ctx, play.CacheKey(gameID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get play state from redis: %w", err)
	}

	var g game.Game
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal play state: %w", err)
	}
	return &g, nil
}

// Put writes the whole snapshot for the game.
func (r *redisPlayStateRepository) Put(ctx context.Context, g *game.Game) error {
	ctx, span := tracer.Start(ctx, "PlayStateRepository.Put")
	defer span.End()

	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal play state: %w", err)
	}
	if err := r.rdb.Set(ctx, play.CacheKey(g.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write play state to redis: %w", err)
	}
	return nil
}

// Delete removes the cache entry for a game.
func (r *redisPlayStateRepository) Delete(ctx context.Context, gameID string) error {
	ctx, span := tracer.Start(ctx, "PlayStateRepository.Delete")
	defer span.End()

	if err := r.rdb.Del(ctx, play.CacheKey(gameID)).Err(); err != nil {
		return fmt.Errorf("failed to delete play state from redis: %w", err)
	}
	return nil
}
