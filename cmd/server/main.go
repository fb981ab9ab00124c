package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/limkokwing/luct-reporting/internal/api"
	"github.com/limkokwing/luct-reporting/internal/auth"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/config"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/db/postgres"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/db/redis"
	"github.com/limkokwing/luct-reporting/internal/infrastructure/store"
	"github.com/limkokwing/luct-reporting/pkg/logger"
)

// @title LUCT Reporting API
// @version 1.0
// @description Lecturer weekly reporting backend with JWT authentication and role-based access control.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; this is the one place stderr is used
		// directly. A missing JWT_SECRET lands here.
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init")
	}

	ctx := context.Background()

	// One connection attempt; on failure the process serves the fixed
	// mock dataset rather than refusing to start.
	st := store.Open(ctx, postgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
		Timeout:  cfg.Database.ConnTimeout,
	}, log)

	// Redis is optional; without it report idempotency checks are off.
	var dedup *redis.DedupChecker
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			PingTimeout: cfg.Redis.Timeout,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unreachable, idempotency checks disabled")
		} else {
			dedup = redis.NewDedupChecker(rdb)
		}
	}

	e := api.NewRouter(api.RouterConfig{
		Tokens:     tokens,
		Store:      st,
		Dedup:      dedup,
		CORSOrigin: cfg.CORSOrigin,
		Log:        log,
	})

	log.Info().
		Str("port", cfg.Port).
		Str("database", st.Mode()).
		Msg("server starting")

	// Fatal exits the process, so the store is closed before logging
	// rather than deferred.
	startErr := e.Start(":" + cfg.Port)
	st.Close()
	if startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
		log.Fatal().Err(startErr).Msg("server start")
	}
}
