package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/krishnapandey24/brandbox-backend/auth"
	"github.com/krishnapandey24/brandbox-backend/cache"
	mediacontroller "github.com/krishnapandey24/brandbox-backend/controllers/media"
	"github.com/krishnapandey24/brandbox-backend/logger"
	"github.com/krishnapandey24/brandbox-backend/models"
	"github.com/krishnapandey24/brandbox-backend/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger.Initialize(os.Getenv("APP_ENV"))
	defer logger.Log.Sync()

	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.Variant{},
		&models.Color{},
		&models.Media{},
		&models.Cart{},
		&models.CartItem{},
		&models.Saved{},
		&models.SavedItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Review{},
	); err != nil {
		logger.Log.Fatal("AutoMigrate failed", zap.Error(err))
	}

	auth.InitFirebase()
	cache.Init()

	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	// Allow large media uploads
	r.MaxMultipartMemory = 1 << 30 // 1GB

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded media
	if err := os.MkdirAll(mediacontroller.Root(), os.ModePerm); err != nil {
		logger.Log.Fatal("Failed to create media root", zap.Error(err))
	}
	r.Static("/media", mediacontroller.Root())

	routes.SetupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Log.Info("Server running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	config := &gorm.Config{TranslateError: true}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), config)
		if err != nil {
			logger.Log.Fatal("DB connection failed", zap.Error(err))
		}
		return db
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), config)
	if err != nil {
		logger.Log.Fatal("Failed to connect DB", zap.Error(err))
	}
	return db
}
