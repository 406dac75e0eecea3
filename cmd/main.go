package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sedulur-fund/internal/adapter/cache"
	"sedulur-fund/internal/adapter/ethereum"
	"sedulur-fund/internal/adapter/http"
	"sedulur-fund/internal/adapter/memory"
	"sedulur-fund/internal/adapter/pinata"
	"sedulur-fund/internal/adapter/postgres"
	"sedulur-fund/internal/adapter/usecase"
	"sedulur-fund/internal/config"
	"sedulur-fund/internal/core/port"
	"sedulur-fund/internal/db"
)

// main is the entry point of the sedulur-fund service. It loads
// configuration, connects to the chain, picks the attempt store and read
// cache, then starts the HTTP server. On receiving a termination signal it
// stops the server and lets in-flight writes settle.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var repo port.TxRepository
	if cfg.Psql.Enabled {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		repo = postgres.NewTxRepository(pool)
	} else {
		logger.Warn("postgres disabled, transaction attempts kept in memory")
		repo = memory.NewTxRepository()
	}

	var readCache port.Cache
	if cfg.Redis.Address != "" {
		rdb, err := cache.Connect(ctx, cfg.Redis.Address)
		if err != nil {
			logger.Error("redis connection error", slog.Any("error", err))
			return
		}
		defer rdb.Close()
		readCache = cache.NewRedis(rdb)
	} else {
		readCache = cache.NewMemory()
	}

	client, eth, err := ethereum.Dial(ctx, cfg.Chain)
	if err != nil {
		logger.Error("rpc connection error", slog.Any("error", err))
		return
	}
	defer eth.Close()

	// A nil *Writer must not end up inside the interface.
	var writer port.ChainWriter
	if cfg.Chain.PrivateKey != "" {
		w, err := client.NewWriter(cfg.Chain.PrivateKey, cfg.Chain.ID)
		if err != nil {
			logger.Error("signing key error", slog.Any("error", err))
			return
		}
		logger.Info("writes enabled", slog.String("account", w.From().Hex()))
		writer = w
	} else {
		logger.Warn("no signing key configured, writes disabled")
	}

	uc := usecase.NewCrowdfundUseCase(client, client, writer, repo, readCache, logger, usecase.Options{
		ChainID:        cfg.Chain.ID,
		Spender:        client.CrowdFundingAddress(),
		BatchLimit:     cfg.Chain.BatchConcurrency,
		ConfirmTimeout: cfg.Chain.ConfirmTimeout,
		CacheTTL:       cfg.Redis.TTL,
	})

	var uploader port.ImageUploader
	if cfg.IPFS.PinataJWT != "" {
		uploader = pinata.NewUploader(cfg.IPFS.PinataEndpoint, cfg.IPFS.PinataJWT, &http.Client{Timeout: 60 * time.Second})
	} else {
		logger.Warn("no pinata token configured, uploads disabled")
	}

	handler := httpadapter.NewHandler(uc, uploader, httpadapter.Options{
		ChainID: cfg.Chain.ID,
		Gateway: cfg.IPFS.GatewayURL,
	}, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.Uint64("chain_id", cfg.Chain.ID))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if err = uc.Close(shutdownCtx); err != nil {
		logger.Warn("pending transactions left unconfirmed", slog.Any("error", err))
	}
}
