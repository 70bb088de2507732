// Package play reconciles a server-supplied game with locally cached
// visited-question progress and keeps the two in sync during a session.
package play

import (
	"context"
	"errors"
	"log/slog"

	"jpereira7/Trivia-Night/internal/game"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("play")

var (
	// ErrNoGame is returned when the engine is used before Load.
	ErrNoGame = errors.New("no game loaded")
	// ErrUnknownQuestion is returned for a question id not on the board.
	ErrUnknownQuestion = errors.New("question not found in game")
)

// CacheKey is the key under which a game's visited snapshot is persisted.
func CacheKey(gameID string) string {
	return "visitedState_" + gameID
}

// Cache is the local persisted store for play snapshots. Implementations
// must treat Get misses as (nil, nil).
type Cache interface {
	Get(ctx context.Context, gameID string) (*game.Game, error)
	Put(ctx context.Context, g *game.Game) error
	Delete(ctx context.Context, gameID string) error
}

// GameAPI is the remote side the engine consults for deletion. Fetching
// and saving go through the same client but the engine itself only ever
// deletes.
type GameAPI interface {
	DeleteGame(ctx context.Context, gameID string) error
}

// Engine drives one play session: a single synchronous actor per game.
type Engine struct {
	cache   Cache
	api     GameAPI
	current *game.Game
}

// NewEngine creates a play engine over a cache and the remote API.
func NewEngine(cache Cache, api GameAPI) *Engine {
	return &Engine{cache: cache, api: api}
}

// Game returns the currently loaded snapshot.
func (e *Engine) Game() *game.Game {
	return e.current
}

// Load picks the effective snapshot for a game. A cached snapshot fully
// supersedes the server copy; the server copy only seeds the very first
// session. A cache read or parse failure falls back to the server
// snapshot instead of propagating.
func (e *Engine) Load(ctx context.Context, server *game.Game) (*game.Game, error) {
	ctx, span := tracer.Start(ctx, "play.Load")
	defer span.End()

	if server == nil {
		return nil, ErrNoGame
	}

	cached, err := e.cache.Get(ctx, server.ID)
	if err != nil {
		slog.Warn("play cache unreadable, falling back to server snapshot", "game", server.ID, "error", err)
		cached = nil
	}
	if cached != nil {
		e.current = cached
	} else {
		e.current = server
	}
	return e.current, nil
}

// SelectQuestion marks a question visited on first selection and persists
// the whole snapshot write-through. Selecting an already-visited question
// is a no-op: the question is not re-opened and nothing is written.
func (e *Engine) SelectQuestion(ctx context.Context, questionID string) (*game.Question, error) {
	ctx, span := tracer.Start(ctx, "play.SelectQuestion")
	defer span.End()

	if e.current == nil {
		return nil, ErrNoGame
	}
	q := e.current.FindQuestion(questionID)
	if q == nil {
		return nil, ErrUnknownQuestion
	}
	if q.Visited {
		return nil, nil
	}

	q.Visited = true
	if err := e.cache.Put(ctx, e.current); err != nil {
		// The in-memory mutation stands; the next successful write
		// persists it.
		slog.Warn("failed to persist play state", "game", e.current.ID, "error", err)
	}
	return q, nil
}

// Questions filters the loaded game by category and difficulty. Selection
// navigation never mutates visited state.
func (e *Engine) Questions(categoryID string, d game.Difficulty) []game.Question {
	if e.current == nil {
		return nil
	}
	c := e.current.FindCategory(categoryID)
	if c == nil {
		return nil
	}
	return game.QuestionsFor(c, d)
}

// Restart resets every visited flag and clears the cache entry, so the
// next Load starts fresh from server data.
func (e *Engine) Restart(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "play.Restart")
	defer span.End()

	if e.current == nil {
		return ErrNoGame
	}
	e.current.ResetVisited()
	return e.cache.Delete(ctx, e.current.ID)
}

// DeleteGame removes the game remotely, then clears the local cache entry.
// The cache is only touched after the API confirms, so a failed remote
// delete never orphans local progress.
func (e *Engine) DeleteGame(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "play.DeleteGame")
	defer span.End()

	if e.current == nil {
		return ErrNoGame
	}
	if err := e.api.DeleteGame(ctx, e.current.ID); err != nil {
		return err
	}
	if err := e.cache.Delete(ctx, e.current.ID); err != nil {
		return err
	}
	e.current = nil
	return nil
}
