package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"
	"modernshop/internal/config"
	"modernshop/internal/importer"
	"modernshop/internal/logging"
	"modernshop/internal/repository"
)

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to catalog product CSV")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.Named("importer")

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatal("open file", zap.Error(err))
	}
	defer f.Close()

	start := time.Now()
	res, err := importer.NewCSVImporter(store.Categories, store.Products, logger).Run(ctx, f)
	if err != nil {
		logger.Fatal("import failed", zap.Error(err))
	}
	logger.Info("import complete",
		zap.String("file", filePath),
		zap.Int("products", res.Products),
		zap.Int("categories_created", res.CategoriesCreated),
		zap.Duration("took", time.Since(start).Truncate(time.Millisecond)),
	)
}
