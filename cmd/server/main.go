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

	"user-microservice/internal/api/controller"
	"user-microservice/internal/api/repository"
	"user-microservice/internal/api/service"
	"user-microservice/internal/config"
	"user-microservice/internal/db"
	"user-microservice/internal/logger"
	"user-microservice/internal/server"
	"user-microservice/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
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

	logger.Init(cfg.LogLevel)

	// Initialize SQLite DB. The schema must exist before any request is served.
	pool, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	defer pool.Close()
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo, []byte(cfg.JWTSecret))
	statusService := service.NewStatusService(userRepo)

	// Create controllers
	userController := controller.NewUserController(userService)
	statusController := controller.NewStatusController(statusService)

	// Create the Gin-based server
	srv := server.NewServer(userController, statusController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on :%s", cfg.Port)
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
