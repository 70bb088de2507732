package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jpereira7/Trivia-Night/internal/api/controller"
	"jpereira7/Trivia-Night/internal/api/repository"
	"jpereira7/Trivia-Night/internal/api/service"
	"jpereira7/Trivia-Night/internal/config"
	"jpereira7/Trivia-Night/internal/db"
	"jpereira7/Trivia-Night/internal/logger"
	"jpereira7/Trivia-Night/internal/server"
	"jpereira7/Trivia-Night/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize SQLite DB
	DB, err := db.DBConnect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to get sqlite db connection: %v", err)
	}
	if err := db.InitializeSchema(DB); err != nil {
		log.Fatalf("failed to initialize sqlite schema: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(DB)
	gameRepo := repository.NewGameRepository(DB)

	// Create services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, tokenService)
	gameService := service.NewGameService(gameRepo)

	// Create controllers
	userController := controller.NewUserController(userService)
	gameController := controller.NewGameController(gameService)

	// Create the Gin-based server
	srv := server.NewServer(tokenService, userController, gameController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Engine(),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	go func() {
		log.Printf("http server started on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
