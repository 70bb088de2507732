package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"jpereira7/Trivia-Night/internal/api/middleware"
	"jpereira7/Trivia-Night/internal/api/models"
	"jpereira7/Trivia-Night/internal/api/response"
	"jpereira7/Trivia-Night/internal/api/service"
	"jpereira7/Trivia-Night/internal/game"

	"github.com/gin-gonic/gin"
)

// GameController handles game CRUD over HTTP. Every route behind it runs
// after the auth middleware, so the identity is always in the context.
type GameController struct {
	gameService service.GameService
}

// NewGameController creates a new GameController.
func NewGameController(gameService service.GameService) *GameController {
	return &GameController{
		gameService: gameService,
	}
}

// Create handles POST /api/games.
func (gc *GameController) Create(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusForbidden, "Invalid token")
		return
	}

	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	g, err := gc.gameService.CreateGame(c.Request.Context(), ownerID, req.Name, req.Categories)
	if err != nil {
		if isValidationError(err) {
			response.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("failed to save game", "owner", ownerID, "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "Failed to save game")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Game saved successfully", gin.H{"game": g})
}

// List handles GET /api/games.
func (gc *GameController) List(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusForbidden, "Invalid token")
		return
	}

	games, err := gc.gameService.ListGames(c.Request.Context(), ownerID)
	if err != nil {
		slog.Error("failed to list games", "owner", ownerID, "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve games")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "", gin.H{"games": games})
}

// Delete handles DELETE /api/games/:gameId. A game that does not exist and
// a game owned by someone else produce the same 404.
func (gc *GameController) Delete(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		response.ErrorResponse(c, http.StatusForbidden, "Invalid token")
		return
	}

	gameID := c.Param("gameId")
	if err := gc.gameService.DeleteGame(c.Request.Context(), ownerID, gameID); err != nil {
		if errors.Is(err, service.ErrNotFoundOrForbidden) {
			response.ErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
		slog.Error("failed to delete game", "owner", ownerID, "game", gameID, "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete game")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Game deleted successfully", nil)
}

func isValidationError(err error) bool {
	return errors.Is(err, game.ErrEmptyGameName) ||
		errors.Is(err, game.ErrNoCategories) ||
		errors.Is(err, game.ErrEmptyCategoryName) ||
		errors.Is(err, game.ErrEmptyQuestionText) ||
		errors.Is(err, game.ErrQuestionCount)
}
