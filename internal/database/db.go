package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/headhunt/headhunt-helper/internal/config"
	"github.com/headhunt/headhunt-helper/internal/models"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: creates the job_applications table automatically
	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.JobApplication{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
