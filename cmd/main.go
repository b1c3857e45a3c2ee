package main

//
//  @title           Control de Acceso a Plantas - PILA API
//  @version         1.0
//  @description     Computes Colombian PILA social-security payment due dates from a NIT and a period.
//  @contact.name    API Support
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        pila
//  @tag.description Endpoints for querying PILA payment due dates
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acceso-plantas/pila-api/config"
	_ "github.com/acceso-plantas/pila-api/docs" // swagger docs
	"github.com/acceso-plantas/pila-api/internal/app"
	"github.com/acceso-plantas/pila-api/internal/logger"
	"github.com/acceso-plantas/pila-api/internal/seed"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the PILA API.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API exposing the due-date calculator.
//   - seed: Bulk-loads the Colombian holiday calendar into Postgres for a
//     range of years (for reporting joins; the API computes in memory).
//
// Flags:
//   - --mode:      Execution mode ("api" or "seed"). Default: "api".
//   - --port:      Port for the API server. Defaults to SERVER_PORT from config.
//   - --desde-ano: First year to seed (seed mode). Default: current year.
//   - --hasta-ano: Last year to seed (seed mode). Default: current year + 1.
//   - --parallel:  How many years to seed concurrently (0=auto).
//   - --force:     Reseed years even if already loaded (deletes existing rows).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	currentYear := time.Now().Year()

	mode := flag.String("mode", "api", "Mode: api or seed")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	desde := flag.Int("desde-ano", currentYear, "First year to seed")
	hasta := flag.Int("hasta-ano", currentYear+1, "Last year to seed")
	parallel := flag.Int("parallel", 0, "How many years to seed concurrently (0=auto)")
	force := flag.Bool("force", false, "Reseed years even if already loaded")
	flag.Parse()

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "seed":
		logger.L().Info().Msg("running festivos seed")

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := seed.SeedYears(ctx, db, *desde, *hasta, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("seed failed")
		}
		logger.L().Info().Msg("seed completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
