package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/api"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/service"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/infrastructure/config"
	mongodb "github.com/MabsIPCA/manalynxAPI-sub001/internal/infrastructure/db/mongo"
	redisdb "github.com/MabsIPCA/manalynxAPI-sub001/internal/infrastructure/db/redis"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/infrastructure/queue"
	"github.com/MabsIPCA/manalynxAPI-sub001/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	policyRepo := mongodb.NewPolicyRepository(db)
	if err := policyRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("policy index creation failed")
	}

	// --- Auth core ---
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// --- Audit pipeline ---
	auditStore := redisdb.NewAuditStore(rdb)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditStore, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Mongo:  db,
		Redis:  rdb,
		Tokens: tokens,
		Audit:  dispatcher,
		Logger: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
