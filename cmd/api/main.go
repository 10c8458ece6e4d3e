package main

import (
	"fmt"
	"os"

	"budgetdash/internal/app"
	"budgetdash/internal/config"
	"budgetdash/internal/handlers"
	"budgetdash/internal/logger"
	"budgetdash/internal/validator"

	_ "budgetdash/internal/docs" // Import swagger docs
)

// @title           Budgetdash API
// @version         1.0
// @description     Budgetdash derives a monthly spending summary, budget status and savings-goal plan from a remote budget service.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	a, err := app.New(appConfig)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warnf("failed to close local store: %v", err)
		}
	}()

	router := handlers.NewRouter(a.Handlers(), a.Sessions)

	log.Infow("Starting budgetdash server",
		"port", appConfig.Port,
		"budget_api", appConfig.BudgetAPIURL,
		"store", appConfig.DBDriver,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
