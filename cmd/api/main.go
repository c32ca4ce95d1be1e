package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"paymob-course-checkout/internal/client"
	"paymob-course-checkout/internal/config"
	"paymob-course-checkout/internal/logger"
	"paymob-course-checkout/internal/repository"
	"paymob-course-checkout/internal/server"
	"paymob-course-checkout/internal/service"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log, os.Stdout)
	slog.SetDefault(log)

	ctx := context.Background()

	purchaseRepo, closeStore, err := newPurchaseRepository(ctx, cfg)
	if err != nil {
		log.Error("init record store", slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStore()

	paymobClient := client.NewPaymobClient(&cfg.Paymob)

	paymentService := service.NewPaymentService(
		paymobClient,
		purchaseRepo,
		&cfg.Paymob,
		cfg.BaseURL,
		log,
	)
	userService := service.NewUserService(purchaseRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(paymentService, userService, log, cfg.WebDir)

	log.Info("Starting HTTP server",
		slog.String("addr", serverAddr),
		slog.String("environment", cfg.Environment.Name),
		slog.String("record_store", cfg.RecordStore),
	)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.Any("error", err))
	}
}

func newPurchaseRepository(ctx context.Context, cfg *config.Config) (repository.PurchaseRepository, func(), error) {
	switch cfg.RecordStore {
	case "firebase":
		fb, err := client.InitFirebaseDatabaseClient(ctx, &cfg.Firebase)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewFirebasePurchaseRepository(fb), func() {}, nil
	case "sql":
		db, err := client.InitDatabaseClient(&cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return repository.NewPurchaseRepository(db), closeDB, nil
	default:
		return nil, nil, fmt.Errorf("unknown RECORD_STORE %q", cfg.RecordStore)
	}
}
