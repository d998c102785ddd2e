package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"modernshop/internal/config"
	"modernshop/internal/httpserver"
	"modernshop/internal/logging"
	"modernshop/internal/notify"
	"modernshop/internal/repository"
	"modernshop/internal/seed"
	cartsvc "modernshop/internal/service/cart"
	catalogsvc "modernshop/internal/service/catalog"
	ordersvc "modernshop/internal/service/order"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	if cfg.SeedOnStart {
		res, err := seed.Apply(ctx, store.Categories, store.Products, seed.Options{})
		if err != nil {
			logger.Fatal("seed catalog", zap.Error(err))
		}
		logger.Info("catalog seeded", zap.Int("categories", res.Categories), zap.Int("products", res.Products))
	}

	notifier, closeNotifier, err := notify.New(cfg.Notify, logger)
	if err != nil {
		logger.Fatal("init notifier", zap.Error(err))
	}

	productRepo := store.Products
	catalogService := catalogsvc.New(store.Categories, productRepo)
	cartService := cartsvc.New(store.Cart, productRepo, logger)
	orderService := ordersvc.New(store.Orders, notifier, cfg.Notify.Timeout, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Catalog: catalogService,
		Cart:    cartService,
		Orders:  orderService,
		Ready:   store.Ping,
	}, httpserver.Options{CORSOrigins: cfg.CORSOrigins})
	if err != nil {
		logger.Fatal("init server", zap.Error(err))
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr), zap.String("store", store.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		logger.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	} else {
		logger.Info("server stopped")
	}
	if err := orderService.Wait(ctx); err != nil {
		logger.Warn("pending order notifications abandoned", zap.Error(err))
	}
	if failed := orderService.NotificationFailures(); failed > 0 {
		logger.Warn("order notifications failed during run", zap.Int64("count", failed))
	}
	if err := closeNotifier(); err != nil {
		logger.Warn("close notifier", zap.Error(err))
	}
}
