package main

import (
	"context"

	"fastfood-backend/configs"
	"fastfood-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := configs.LoadConfig()

	ctx := context.Background()
	client, err := configs.ConnectDB(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	db := client.Database(cfg.MongoDB)
	if err := configs.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("could not ensure indexes")
	}

	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("port", cfg.Port).Msg("server listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
