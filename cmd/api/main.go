package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/auth"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/config"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/database"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/routes"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.LoadConfig()
	auth.Init(cfg.JWTSecret)

	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	router, err := routes.SetupRouter(client, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to set up router")
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(router)

	logger.Info().Str("port", cfg.Port).Msg("server listening")
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
