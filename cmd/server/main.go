package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/config"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/api"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/database"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/middleware"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/repository"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using system environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	if cfg.Auth.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := database.Open(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	logger.Info("Running database migrations...")
	if err := database.MigrateSchema(db); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	users := repository.NewUserRepository(db)
	listings := repository.NewListingRepository(db)
	bookings := repository.NewBookingRepository(db)
	reviews := repository.NewReviewRepository(db)

	handler := api.NewHandler(
		service.NewListingService(listings, logger),
		service.NewBookingService(bookings, listings, logger),
		service.NewReviewService(reviews, bookings, listings, logger),
		logger,
	)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.CORSOrigins) == 1 && cfg.Server.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	auth := middleware.Auth([]byte(cfg.Auth.JWTSecret), users, logger)
	api.SetupRoutes(router, handler, auth)

	logger.Infof("Starting server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
