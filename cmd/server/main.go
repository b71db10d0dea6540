// Package main initializes and starts the to-do list HTTP server,
// setting up configuration, logging, the database connection,
// repositories, services, handlers, and routing.
package main

import (
	"cmp"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/VIJ4YKUMAR/todolist-API/internal/config"
	"github.com/VIJ4YKUMAR/todolist-API/internal/db"
	"github.com/VIJ4YKUMAR/todolist-API/internal/logger"
	"github.com/VIJ4YKUMAR/todolist-API/internal/repository"
	"github.com/VIJ4YKUMAR/todolist-API/internal/server/handler/http"
	"github.com/VIJ4YKUMAR/todolist-API/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dsn := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize the PostgreSQL connection; the handle is constructed once
	// here and passed down to the repositories.
	postgresDB, err := db.InitPostgres(dsn)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Initialize repositories for users and to-do items.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	todoRepo := repository.NewPostgresTodoRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo)
	todoService := service.NewTodoService(todoRepo)

	// Create HTTP handlers for the token and to-do endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	todoHandler := &http.TodoHandler{TodoService: todoService}

	// Build the router with middleware and routes. The auth service doubles
	// as the credential resolver for the protected routes.
	router := http.NewRouter(authHandler, todoHandler, authService, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
