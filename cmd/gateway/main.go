package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"mamahiam-storefront/internal/cart"
	"mamahiam-storefront/internal/config"
	"mamahiam-storefront/internal/httpserver"
	"mamahiam-storefront/internal/shopapi"
	"mamahiam-storefront/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[gateway] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	store := storage.NewRedis(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, logger)
	defer store.Close()

	// Carts degrade to per-process memory when the store is down; worth a
	// note in the log, not a refusal to start.
	if !store.Available(context.Background()) {
		logger.Printf("cart store at %s not available, carts will not survive restarts", cfg.RedisAddr)
	}

	registry := cart.NewRegistry(store, cfg.CartTTL, logger)
	api := shopapi.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	cookies := sessions.NewCookieStore([]byte(cfg.SessionSecret))

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Store:             store,
		Carts:             registry,
		Catalog:           api,
		Orders:            api,
		Sessions:          cookies,
		AllowedOrigins:    cfg.AllowedOrigins,
		ConfirmationGrace: cfg.ConfirmationGrace,
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
