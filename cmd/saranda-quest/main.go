package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/api"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/catalog"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/config"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/constants"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/service"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/storage"
)

func main() {
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = constants.DefaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Fatal("invalid configuration", err, logging.Fields{"config_path": configPath})
	}
	logging.SetDebug(cfg.Debug)

	db, err := storage.OpenAndMigrate(cfg.DBPath)
	if err != nil {
		logging.Fatal("failed to initialize database", err, logging.Fields{"db_path": cfg.DBPath})
	}
	repo := storage.NewSQLiteRepository(db)

	regions, err := catalog.LoadRegions(cfg.RegionsPath)
	if err != nil {
		logging.Fatal("failed to load region tables", err, logging.Fields{"regions_path": cfg.RegionsPath})
	}

	player, err := repo.LoadOrCreatePlayer(cfg.PlayerName)
	if err != nil {
		logging.Fatal("failed to load player profile", err, logging.Fields{"player": cfg.PlayerName})
	}

	species := catalog.NewSpeciesClient(cfg.SpeciesBaseURL, cfg.CatalogTimeout(), repo)
	session := service.NewSession(player, repo, species, regions)

	// Passive party recovery while out of battle.
	go func() {
		ticker := time.NewTicker(constants.RegenInterval)
		defer ticker.Stop()
		for range ticker.C {
			session.RegenTick()
		}
	}()

	handler := api.NewHandler(session, regions)
	router := gin.Default()
	handler.Register(router)

	logging.Info("server starting", logging.Fields{
		"address":     cfg.ServerAddress,
		"db_path":     cfg.DBPath,
		"species_url": cfg.SpeciesBaseURL,
	})
	if err := router.Run(cfg.ServerAddress); err != nil {
		logging.Fatal("server stopped", err, nil)
	}
}
