package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"turnaicash-admin/internal/common/cache"
	"turnaicash-admin/internal/common/config"
	"turnaicash-admin/internal/common/logger"
	"turnaicash-admin/internal/features/advertisements"
	"turnaicash-admin/internal/features/auth"
	"turnaicash-admin/internal/features/bonuses"
	"turnaicash-admin/internal/features/botusers"
	"turnaicash-admin/internal/features/coupons"
	"turnaicash-admin/internal/features/deposits"
	"turnaicash-admin/internal/features/networks"
	"turnaicash-admin/internal/features/notifications"
	"turnaicash-admin/internal/features/platforms"
	"turnaicash-admin/internal/features/settings"
	"turnaicash-admin/internal/features/telephones"
	"turnaicash-admin/internal/features/transactions"
	"turnaicash-admin/internal/features/userappids"
	gateway "turnaicash-admin/internal/http"
	"turnaicash-admin/internal/platform/partner"
	"turnaicash-admin/internal/platform/redis"
	"turnaicash-admin/internal/platform/turnaicash"
	"turnaicash-admin/internal/session"
)

func main() {
	cfg := config.Load()
	logger.Init("turnaicash-admin", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb, err := redis.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Redis connection failed")
	}
	defer rdb.Close()

	upstream := turnaicash.NewClient(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSec)*time.Second)
	cacheService := cache.NewService(rdb, time.Duration(cfg.Cache.QueryTTLSec)*time.Second)
	sessions := session.NewStore(rdb, cfg.Production)
	validator := partner.NewClient(cfg.Partner.BaseURL, cfg.Partner.APIKey, cfg.Partner.CurrencyID)

	router := gateway.NewRouter(cfg,
		auth.NewHandler(auth.NewService(upstream), sessions),
		platforms.NewHandler(platforms.NewService(upstream, cacheService), sessions),
		coupons.NewHandler(coupons.NewService(upstream, cacheService), sessions),
		advertisements.NewHandler(advertisements.NewService(upstream, cacheService), sessions),
		transactions.NewHandler(transactions.NewService(upstream, cacheService), sessions),
		notifications.NewHandler(notifications.NewService(upstream, cacheService), sessions),
		botusers.NewHandler(botusers.NewService(upstream, cacheService), sessions),
		telephones.NewHandler(telephones.NewService(upstream, cacheService), sessions),
		userappids.NewHandler(userappids.NewService(upstream, cacheService, validator), sessions),
		bonuses.NewHandler(bonuses.NewService(upstream, cacheService), sessions),
		networks.NewHandler(networks.NewService(upstream, cacheService), sessions),
		settings.NewHandler(settings.NewService(upstream, cacheService), sessions),
		deposits.NewHandler(deposits.NewService(upstream, cacheService), sessions),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logger.Info().Msg("Server stopped")
}
