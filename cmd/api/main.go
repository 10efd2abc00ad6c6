package main

import (
	"context"
	"net/http"
	"time"

	storekv "pet-haven/internal/adapters/storage/kv"
	"pet-haven/internal/domain/users"
	"pet-haven/internal/kvstore"
	"pet-haven/internal/kvstore/memory"
	"pet-haven/internal/kvstore/postgres"
	"pet-haven/internal/kvstore/sqlite"
	"pet-haven/internal/platform/config"
	"pet-haven/internal/platform/logger"
	"pet-haven/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{App: "pet-haven"}).Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    "pet-haven",
	})

	store, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("open store")
	}
	defer store.Close()

	if cfg.SeedDemo {
		usersSvc := users.NewService(storekv.NewUsersRepo(store))
		if err := usersSvc.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("seed demo accounts")
		}
	}

	r := router.NewRouter(router.Options{
		Store:    store,
		VetEmail: cfg.VetEmail,
		Log:      log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", srv.Addr).Str("driver", cfg.Storage.Driver).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server error")
	}
}

func openStore(cfg config.Storage) (kvstore.KV, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath)
	case "postgres":
		return postgres.Open(cfg.PostgresDSN)
	default:
		return memory.New(), nil
	}
}
