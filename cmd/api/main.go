package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"psycare-backend/internal/config"
	"psycare-backend/internal/handlers"
	"psycare-backend/internal/routes"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// 2. Connect DB + wire stores
	config.ConnectDB()
	handlers.Init(config.DB)

	// 3. Router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// 4. Routes (middleware included)
	routes.SetupRoutes(r)

	// 5. Run
	port := config.Getenv("PORT", "8080")
	log.Info().Str("port", port).Msg("server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
