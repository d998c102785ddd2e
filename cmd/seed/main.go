package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"go.uber.org/zap"
	"modernshop/internal/config"
	"modernshop/internal/logging"
	"modernshop/internal/repository"
	"modernshop/internal/seed"
	usersvc "modernshop/internal/service/user"
)

func main() {
	reset := flag.Bool("reset", false, "delete all products and categories before seeding")
	flag.Parse()

	cfg := config.FromEnv()
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("seed")

	if cfg.StoreDriver != config.StorePostgres {
		logger.Warn("seeding a non-persistent store has no lasting effect", zap.String("store", cfg.StoreDriver))
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	res, err := seed.Apply(ctx, store.Categories, store.Products, seed.Options{Reset: *reset})
	if err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}
	logger.Info("seed applied",
		zap.Int("categories", res.Categories),
		zap.Int("products", res.Products),
		zap.Bool("reset", *reset),
	)

	if cfg.Seed.AdminUsername == "" {
		return
	}
	users := usersvc.New(store.Users)
	u, created, err := users.EnsureExists(ctx, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword)
	if err != nil {
		logger.Fatal("ensure admin user", zap.Error(err))
	}
	if !created {
		// EnsureExists never rewrites a stored password.
		_, err := users.Verify(ctx, u.Username, cfg.Seed.AdminPassword)
		switch {
		case errors.Is(err, usersvc.ErrInvalidCredentials):
			logger.Warn("existing admin password differs from SEED_ADMIN_PASSWORD and was left unchanged",
				zap.String("username", u.Username))
		case err != nil:
			logger.Fatal("verify admin user", zap.Error(err))
		}
	}
	logger.Info("admin user ready", zap.String("username", u.Username), zap.Bool("created", created))
}
