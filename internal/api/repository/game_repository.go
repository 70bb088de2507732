package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jpereira7/Trivia-Night/internal/game"

	"github.com/jmoiron/sqlx"
)

// GameRepository defines the interface for game document operations.
// The store never distinguishes "missing" from "owned by someone else":
// every read and delete is filtered by owner.
type GameRepository interface {
	Create(ctx context.Context, g *game.Game) error
	ListByOwner(ctx context.Context, ownerID int64) ([]game.Game, error)
	DeleteOwned(ctx context.Context, ownerID int64, gameID string) (bool, error)
}

type sqliteGameRepository struct {
	db *sqlx.DB
}

// NewGameRepository creates a new SQLite-based GameRepository.
func NewGameRepository(db *sqlx.DB) GameRepository {
	return &sqliteGameRepository{db: db}
}

// gameRow is the storage shape: the category tree rides in a single JSON
// column so each game is written atomically as one document.
type gameRow struct {
	ID         string    `db:"id"`
	UserID     int64     `db:"user_id"`
	Name       string    `db:"name"`
	Categories string    `db:"categories"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (row *gameRow) toGame() (*game.Game, error) {
	var categories []game.Category
	if err := json.Unmarshal([]byte(row.Categories), &categories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal categories for game %s: %w", row.ID, err)
	}
	return &game.Game{
		ID:         row.ID,
		OwnerID:    row.UserID,
		Name:       row.Name,
		Categories: categories,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

// Create persists a new game document.
func (r *sqliteGameRepository) Create(ctx context.Context, g *game.Game) error {
	categories, err := json.Marshal(g.Categories)
	if err != nil {
		return fmt.Errorf("failed to marshal categories: %w", err)
	}

	query := `INSERT INTO games (id, user_id, name, categories, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query, g.ID, g.OwnerID, g.Name, string(categories), g.CreatedAt, g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// ListByOwner returns all games owned by the caller, most recent first.
func (r *sqliteGameRepository) ListByOwner(ctx context.Context, ownerID int64) ([]game.Game, error) {
	var rows []gameRow
	query := `SELECT id, user_id, name, categories, created_at, updated_at
	          FROM games WHERE user_id = ? ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	games := make([]game.Game, 0, len(rows))
	for i := range rows {
		g, err := rows[i].toGame()
		if err != nil {
			return nil, err
		}
		games = append(games, *g)
	}
	return games, nil
}

// DeleteOwned deletes the game only if the caller owns it. Returns false
// when nothing was deleted, whether the game is missing or someone else's.
func (r *sqliteGameRepository) DeleteOwned(ctx context.Context, ownerID int64, gameID string) (bool, error) {
	query := `DELETE FROM games WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, gameID, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to delete game: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}
	return affected > 0, nil
}
