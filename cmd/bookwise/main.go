package main

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookwise/pkg/config"
	"bookwise/pkg/database"
	"bookwise/pkg/logger"
)

var db *gorm.DB

func main() {
	cfg := config.LoadConfig()

	logger.Init(logger.Config{
		ServiceName: "bookwise",
		LogFilePath: cfg.LogFilePath,
		MaxSizeMB:   cfg.LogMaxSizeMB,
		MaxBackups:  cfg.LogMaxBackups,
		MaxAgeDays:  cfg.LogMaxAgeDays,
	})

	logger.Info(logger.EventServiceStartup, "BookWise service starting", logger.Fields(
		"port", cfg.ServerPort,
		"environment", cfg.Environment,
	))

	var err error
	db, err = database.Connect(cfg)
	if err != nil {
		logger.Fatal(logger.EventDBError, "Failed to connect to database", logger.Fields("error", err.Error()))
	}

	if cfg.SeedData {
		seedData()
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter()

	logger.Info(logger.EventServiceStartup, "Server starting", logger.Fields("address", ":"+cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal(logger.EventGeneral, "Server failed", logger.Fields("error", err.Error()))
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.Use(identifyUser())

	router.GET("/books", getBooks)
	router.GET("/books/popular", getPopularBooks)
	router.GET("/books/categories", getCategories)
	router.POST("/books/:bookId/rate", rateBook)
	router.GET("/ratings/latest", getLatestRatings)
	router.GET("/ratings/user-latest", getUserLatestRating)
	router.GET("/profile/:userId", getProfile)
	router.GET("/manage/health", healthCheck)

	return router
}
