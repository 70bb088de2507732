package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jpereira7/Trivia-Night/internal/game"
	"jpereira7/Trivia-Night/internal/play"

	"github.com/jmoiron/sqlx"
)

// localPlayStateRepository keeps play snapshots in a SQLite key-value
// table: the file-backed, process-local store the play client uses by
// default. It implements play.Cache.
type localPlayStateRepository struct {
	db *sqlx.DB
}

// NewLocalPlayStateRepository creates a SQLite-backed play-state cache.
func NewLocalPlayStateRepository(db *sqlx.DB) play.Cache {
	return &localPlayStateRepository{db: db}
}

// Get retrieves the cached snapshot for a game, or (nil, nil) on a miss.
func (r *localPlayStateRepository) Get(ctx context.Context, gameID string) (*game.Game, error) {
	var snapshot string
	query := `SELECT snapshot FROM play_state WHERE cache_key = ?`
	err := r.db.GetContext(ctx, &snapshot, query, play.CacheKey(gameID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read play state: %w", err)
	}

	var g game.Game
	if err := json.Unmarshal([]byte(snapshot), &g); err != nil {
		return nil, fmt.Errorf("failed to unmarshal play state: %w", err)
	}
	return &g, nil
}

// Put writes the whole snapshot for the game.
func (r *localPlayStateRepository) Put(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal play state: %w", err)
	}

	query := `INSERT INTO play_state (cache_key, snapshot) VALUES (?, ?)
	          ON CONFLICT(cache_key) DO UPDATE SET snapshot = excluded.snapshot`
	if _, err := r.db.ExecContext(ctx, query, play.CacheKey(g.ID), string(data)); err != nil {
		return fmt.Errorf("failed to write play state: %w", err)
	}
	return nil
}

// Delete removes the cache entry for a game.
func (r *localPlayStateRepository) Delete(ctx context.Context, gameID string) error {
	query := `DELETE FROM play_state WHERE cache_key = ?`
	if _, err := r.db.ExecContext(ctx, query, play.CacheKey(gameID)); err != nil {
		return fmt.Errorf("failed to delete play state: %w", err)
	}
	return nil
}
