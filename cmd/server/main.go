package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/shop-admin/config"
	"github.com/d60-Lab/shop-admin/internal/api"
	"github.com/d60-Lab/shop-admin/internal/api/handler"
	"github.com/d60-Lab/shop-admin/internal/middleware"
	"github.com/d60-Lab/shop-admin/internal/repository"
	"github.com/d60-Lab/shop-admin/internal/service"
	"github.com/d60-Lab/shop-admin/pkg/database"
	"github.com/d60-Lab/shop-admin/pkg/logger"
	"github.com/d60-Lab/shop-admin/pkg/trace"
	"github.com/d60-Lab/shop-admin/pkg/validate"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// @title shop-admin API
// @version 1.0
// @description 电商后台管理接口
// @BasePath /
func main() {
	cfg := must(config.Load())

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		panic(err)
	}
	defer logger.Sync()

	validate.Setup()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.App.Env,
		}); err != nil {
			logger.Warn("sentry init failed", zap.Error(err))
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Trace.Enabled {
		shutdown := must(trace.Init(ctx, cfg))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	db := must(database.InitDB(cfg))
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("auto migrate failed", zap.Error(err))
		return
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	sessions := service.NewSessionStore(rdb, cfg.JWT.TTL)

	// repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	productRepo := repository.NewProductRepository(db)
	imageRepo := repository.NewProductImageRepository(db)
	reviewRepo := repository.NewProductReviewRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	cartRepo := repository.NewCartRepository(db)
	cartItemRepo := repository.NewCartItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// services
	catalogSvc := service.NewCatalogService(categoryRepo, productRepo, imageRepo, reviewRepo, userRepo)
	cartSvc := service.NewCartService(cartRepo, cartItemRepo, productRepo, userRepo)
	orderSvc := service.NewOrderService(orderRepo, orderItemRepo, paymentRepo, userRepo, addressRepo, productRepo)
	addressSvc := service.NewAddressService(addressRepo, userRepo)
	authSvc := service.NewAuthService(userRepo, sessions, cfg.JWT.Secret, cfg.JWT.TTL)

	h := handler.New(catalogSvc, cartSvc, orderSvc, addressSvc, authSvc)
	authMW := middleware.Auth(cfg.JWT.Secret, sessions)
	r := api.NewRouter(cfg, h, authMW)

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
