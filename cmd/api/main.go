package main

import (
	"log"
	"os"

	"github.com/codigofacil/crm-api/internal/application/service"
	"github.com/codigofacil/crm-api/internal/config"
	"github.com/codigofacil/crm-api/internal/infrastructure/database"
	"github.com/codigofacil/crm-api/internal/infrastructure/repository"
	"github.com/codigofacil/crm-api/internal/presentation/http/handler"
	"github.com/codigofacil/crm-api/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize repositories
	companyRepo := repository.NewCompanyRepository(db)
	contactRepo := repository.NewContactRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	stageRepo := repository.NewPipelineStageRepository(db)

	// Initialize services
	companyService := service.NewCompanyService(companyRepo)
	contactService := service.NewContactService(contactRepo)
	leadService := service.NewLeadService(leadRepo)
	followUpService := service.NewFollowUpService(followUpRepo)
	stageService := service.NewPipelineStageService(stageRepo)
	dashboardService := service.NewDashboardService(companyRepo, contactRepo, leadRepo, followUpRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Company:       handler.NewCompanyHandler(companyService),
		Contact:       handler.NewContactHandler(contactService),
		Lead:          handler.NewLeadHandler(leadService),
		FollowUp:      handler.NewFollowUpHandler(followUpService),
		PipelineStage: handler.NewPipelineStageHandler(stageService),
		Dashboard:     handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
