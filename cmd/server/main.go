package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alamin-rocks/assetflow-server/internal/api"
	"github.com/alamin-rocks/assetflow-server/internal/config"
	"github.com/alamin-rocks/assetflow-server/internal/logger"
	"github.com/alamin-rocks/assetflow-server/internal/repository"
	"github.com/alamin-rocks/assetflow-server/internal/service"
)

func main() {
	log := logger.Get()

	// Load configuration
	cfg := config.LoadConfig()

	// Set up database connection
	db, err := config.SetupDatabase(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to set up database")
	}
	defer db.Close()

	// Create repository
	repo := repository.NewPostgresRepository(db, cfg.Aggregation.StrictMissingSegment)

	// Create service
	svc := service.NewDefaultService(repo, cfg.Auth.JWTSecret)

	// Create API handler
	handler := api.NewHandler(svc)

	// Set up Gin router
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Add middleware for JWT secret
	router.Use(func(c *gin.Context) {
		c.Set("jwtSecret", []byte(cfg.Auth.JWTSecret))
		c.Next()
	})

	// Set up routes
	handler.SetupRoutes(router)

	// Start server
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.WithField("addr", serverAddr).Info("Starting server")
	if err := http.ListenAndServe(serverAddr, router); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
