package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"coffeesaf/internal/cart"
	"coffeesaf/internal/config"
	"coffeesaf/internal/db"
	"coffeesaf/internal/httpserver"
	"coffeesaf/internal/loyalty"
	"coffeesaf/internal/notify"
	catalogrepo "coffeesaf/internal/repository/catalog"
	"coffeesaf/internal/seed"
	catalogsvc "coffeesaf/internal/service/catalog"
	checkoutsvc "coffeesaf/internal/service/checkout"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	catalogRepo := catalogrepo.NewPostgres(dbpool, logger)
	catalogService := catalogsvc.New(catalogRepo, logger)
	if err := catalogService.EnsureSeeded(ctx, seed.Menu()); err != nil {
		logger.Fatalf("seed catalog: %v", err)
	}

	cartStore := cart.NewStore()
	loyaltyTracker := loyalty.NewTracker()
	notifier := notify.NewTelegram(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID)
	checkoutService := checkoutsvc.New(cartStore, loyaltyTracker, notifier, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		Cart:        cartStore,
		Loyalty:     loyaltyTracker,
		CheckoutSvc: checkoutService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
