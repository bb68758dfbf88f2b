package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marocstar-shop/internal/admin"
	"marocstar-shop/internal/backend"
	"marocstar-shop/internal/cart"
	"marocstar-shop/internal/catalog"
	"marocstar-shop/internal/checkout"
	"marocstar-shop/internal/config"
	"marocstar-shop/internal/contact"
	"marocstar-shop/internal/httpview"
	"marocstar-shop/internal/logger"
	"marocstar-shop/internal/session"
	"marocstar-shop/internal/storage"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	store, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		logger.L().Fatal("failed to open local storage", zap.Error(err))
	}

	api, err := backend.NewClient(cfg.BackendBaseURL)
	if err != nil {
		logger.L().Fatal("failed to build backend client", zap.Error(err))
	}

	cartStore := cart.NewStore(store)
	badge := httpview.NewCartBadge(cartStore)
	defer badge.Close()

	sessions := session.NewService(api, store)

	shop := httpview.NewShopHandlers(
		catalog.NewService(api, cartStore),
		checkout.NewService(api, cartStore),
		contact.NewService(api),
		cartStore,
		badge,
	)
	console := httpview.NewAdminHandlers(
		admin.NewProducts(api),
		admin.NewOrders(api),
		admin.NewInbox(api),
		admin.NewDashboard(api),
		sessions,
	)

	router := httpview.NewRouter(httpview.Deps{
		Shop:     shop,
		Admin:    console,
		Sessions: sessions,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.L().Info("storefront listening",
			zap.String("port", cfg.AppPort),
			zap.String("backend", cfg.BackendBaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.L().Info("server exited")
}
