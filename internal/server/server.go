package server

import (
	"net/http"

	"jpereira7/Trivia-Night/internal/api/controller"
	"jpereira7/Trivia-Night/internal/api/middleware"
	"jpereira7/Trivia-Night/internal/api/service"

	"github.com/gin-gonic/gin"
)

// Server assembles the gin engine: public auth routes, token-protected
// game routes, and a health check.
type Server struct {
	engine *gin.Engine
}

// NewServer wires the controllers into the route tree.
func NewServer(tokens service.TokenService, users *controller.UserController, games *controller.GameController) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	api := engine.Group("/api")
	{
		api.POST("/register", users.Register)
		api.POST("/login", users.Login)

		protected := api.Group("/")
		protected.Use(middleware.AuthRequired(tokens))
		{
			protected.POST("/games", games.Create)
			protected.GET("/games", games.List)
			protected.DELETE("/games/:gameId", games.Delete)
		}
	}

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Server{engine: engine}
}

// Engine exposes the underlying handler for the http.Server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
