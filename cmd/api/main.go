package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/headhunt/headhunt-helper/internal/config"
	"github.com/headhunt/headhunt-helper/internal/database"
	"github.com/headhunt/headhunt-helper/internal/handlers"
	"github.com/headhunt/headhunt-helper/internal/repository"
	"github.com/headhunt/headhunt-helper/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	// 2. Database Connection
	db := database.Connect(cfg)

	// 3. Initialize Core Services (Dependencies)
	llmService, err := services.NewLLMService(cfg)
	if err != nil {
		log.Fatal("Failed to create LLM client: ", err)
	}

	repo := repository.NewApplicationRepository(db)
	csvService := services.NewCSVExportService(cfg.CSVExportPath)
	appService := services.NewApplicationService(repo, csvService)
	extractor := services.NewExtractorService(llmService, appService)

	// 4. Initialize Handlers
	appHandler := handlers.NewApplicationHandler(appService, extractor)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // consumed by a localhost SPA + browser extension
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With"}
	r.Use(cors.New(corsConfig))

	// 6. Define Routes
	api := r.Group("/api")
	{
		api.GET("/v1/health", handlers.HealthCheck)

		apps := api.Group("/applications")
		{
			apps.GET("", appHandler.List)
			apps.GET("/:id", appHandler.Get)
			apps.POST("", appHandler.Create)
			apps.PUT("/:id", appHandler.Update)
			apps.DELETE("/:id", appHandler.Delete)
			apps.GET("/search/company", appHandler.SearchByCompany)
			apps.GET("/search/position", appHandler.SearchByPosition)
			apps.GET("/status/:status", appHandler.ListByStatus)
			apps.POST("/html", appHandler.ExtractFromHTML)
		}
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
