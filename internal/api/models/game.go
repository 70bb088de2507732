package models

import "jpereira7/Trivia-Night/internal/game"

// CreateGameRequest defines the structure for saving a new game.
type CreateGameRequest struct {
	Name       string          `json:"name" binding:"required"`
	Categories []game.Category `json:"categories" binding:"required,min=1"`
}
