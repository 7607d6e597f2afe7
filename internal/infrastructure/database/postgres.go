package database

import (
	"fmt"
	"log"

	"github.com/codigofacil/crm-api/internal/config"
	"github.com/codigofacil/crm-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.LogQueries {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Company{},
		&entity.Contact{},
		&entity.PipelineStage{},
		&entity.Lead{},
		&entity.FollowUp{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// defaultStages is the fixed set of pipeline stages seeded on first start.
var defaultStages = []entity.PipelineStage{
	{Name: "Lead", Description: strPtr("Initial contact made"), Order: 1, Color: "#6b7280", IsDefault: true},
	{Name: "Qualified", Description: strPtr("Lead has been qualified"), Order: 2, Color: "#3b82f6"},
	{Name: "Proposal", Description: strPtr("Proposal sent to client"), Order: 3, Color: "#f59e0b"},
	{Name: "Negotiation", Description: strPtr("In negotiation phase"), Order: 4, Color: "#ef4444"},
	{Name: "Closed Won", Description: strPtr("Deal successfully closed"), Order: 5, Color: "#10b981"},
	{Name: "Closed Lost", Description: strPtr("Deal was lost"), Order: 6, Color: "#6b7280"},
}

// SeedDefaultData seeds the database with the default pipeline stages and,
// when configured, an admin user that leads and follow-ups can be assigned to.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	for i := range defaultStages {
		var existing entity.PipelineStage
		if err := db.Where("name = ?", defaultStages[i].Name).First(&existing).Error; err != nil {
			stage := defaultStages[i]
			if err := db.Create(&stage).Error; err != nil {
				log.Printf("Warning: failed to create pipeline stage %s: %v", stage.Name, err)
			}
		}
	}

	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Admin"
				}
				adminUser := entity.User{
					Email:    adminEmail,
					Name:     adminName,
					Role:     "admin",
					Password: string(hashedPassword),
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

func strPtr(s string) *string {
	return &s
}
