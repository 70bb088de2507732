package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"jpereira7/Trivia-Night/internal/api/models"
	"jpereira7/Trivia-Night/internal/api/response"
	"jpereira7/Trivia-Night/internal/api/service"

	"github.com/gin-gonic/gin"
)

// UserController handles user-related HTTP requests.
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register handles the user registration endpoint.
func (uc *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := uc.userService.Register(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			response.ErrorResponse(c, http.StatusBadRequest, "Username already exists")
			return
		}
		slog.Error("registration failed", "username", req.Username, "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Registration successful", nil)
}

// Login handles the user login endpoint. Unknown user and wrong password
// both come back as 401.
func (uc *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := uc.userService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.ErrorResponse(c, http.StatusUnauthorized, "User not found")
		case errors.Is(err, service.ErrInvalidCredentials):
			response.ErrorResponse(c, http.StatusUnauthorized, "Invalid password")
		default:
			slog.Error("login failed", "username", req.Username, "error", err)
			response.ErrorResponse(c, http.StatusInternalServerError, "Server error")
		}
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"token": res.Token,
		"user":  res.User,
	})
}
