package service

import (
	"context"

	"jpereira7/Trivia-Night/internal/api/repository"
	"jpereira7/Trivia-Night/internal/game"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api.service")

// GameService defines the interface for game-related business logic.
type GameService interface {
	CreateGame(ctx context.Context, ownerID int64, name string, categories []game.Category) (*game.Game, error)
	ListGames(ctx context.Context, ownerID int64) ([]game.Game, error)
	DeleteGame(ctx context.Context, ownerID int64, gameID string) error
}

type gameService struct {
	gameRepo repository.GameRepository
}

// NewGameService creates a new GameService.
func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

// CreateGame validates and persists a new game owned by the caller. This
// is the single save path: the one-category wizard flow and multi-category
// saves both end up here.
func (s *gameService) CreateGame(ctx context.Context, ownerID int64, name string, categories []game.Category) (*game.Game, error) {
	ctx, span := tracer.Start(ctx, "GameService.CreateGame")
	defer span.End()

	g, err := game.NewGame(ownerID, name, categories)
	if err != nil {
		return nil, err
	}
	if err := s.gameRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGames returns the caller's games, most recent first.
func (s *gameService) ListGames(ctx context.Context, ownerID int64) ([]game.Game, error) {
	ctx, span := tracer.Start(ctx, "GameService.ListGames")
	defer span.End()

	return s.gameRepo.ListByOwner(ctx, ownerID)
}

// DeleteGame deletes one of the caller's games. A missing game and a game
// owned by someone else produce the same error.
func (s *gameService) DeleteGame(ctx context.Context, ownerID int64, gameID string) error {
	ctx, span := tracer.Start(ctx, "GameService.DeleteGame")
	defer span.End()

	deleted, err := s.gameRepo.DeleteOwned(ctx, ownerID, gameID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFoundOrForbidden
	}
	return nil
}
