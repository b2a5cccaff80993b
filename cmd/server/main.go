package main

import (
	"context"
	"fmt"

	"github.com/foodbridge/food-bridge/internal/adapter"
	"github.com/foodbridge/food-bridge/internal/config"
	"github.com/foodbridge/food-bridge/internal/handler"
	"github.com/foodbridge/food-bridge/internal/logger"
	"github.com/foodbridge/food-bridge/internal/server"
	"github.com/foodbridge/food-bridge/internal/service"
	"github.com/foodbridge/food-bridge/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("food-bridge-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	adapters := service.Adapters{
		Payment: adapter.NewIntaSendClient(cfg.Payment),
		Oracle:  adapter.NewOpenAIClient(cfg.Oracle),
	}

	services := service.NewServices(storages, adapters, cfg, log)
	handlers := handler.NewHandlers(services, cfg.Server, log)

	srv := server.NewServer(handlers, cfg.Server, log)
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
