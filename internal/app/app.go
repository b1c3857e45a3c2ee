package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/acceso-plantas/pila-api/config"
	"github.com/acceso-plantas/pila-api/internal/api"
	"github.com/acceso-plantas/pila-api/internal/pila"
	"github.com/acceso-plantas/pila-api/internal/service"
	"github.com/acceso-plantas/pila-api/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (consulta audit log).
//   - Builds the due-date calculator from configuration.
//   - Creates the HTTP handler layer and the Gin router.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewPilaRepository(db)

	calc := pila.NewCalculator(cfg.Pila.WarningDays, cfg.Pila.DefaultDays)

	svc := service.NewPilaService(calc, repo)

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
