package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Kacper0199/AGH-Navigator-App/campusmap"
	"github.com/Kacper0199/AGH-Navigator-App/config"
	"github.com/Kacper0199/AGH-Navigator-App/handlers"
	"github.com/Kacper0199/AGH-Navigator-App/middleware"
	"github.com/Kacper0199/AGH-Navigator-App/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	cfg := config.LoadConfig()

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	campus, err := campusmap.LoadFile(cfg.PointsFile)
	if err != nil {
		logger.Fatal("failed to load campus map", zap.Error(err))
	}
	logger.Info("campus map loaded",
		zap.String("file", cfg.PointsFile),
		zap.Int("locations", len(campus.Graph().Locations())),
		zap.Int("buildings", len(campus.Buildings())))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	if cfg.EnableCORS {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
		corsConfig.AllowHeaders = []string{"*"}
		r.Use(cors.New(corsConfig))
	}

	r.GET("/metrics", middleware.PrometheusHandler())

	routingService := services.NewRoutingService(campus, logger)
	handlers.NewRoutingHandler(routingService, logger).RegisterRoutes(r)

	logger.Info("navigator server starting", zap.String("address", cfg.ServerAddress))
	if err := r.Run(cfg.ServerAddress); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
