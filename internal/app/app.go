// Package app wires configuration, storage, services, and transport into a
// runnable HTTP server.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql (migrations)
	"github.com/pressly/goose/v3"

	"github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	eventrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/event"
	listingrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/listing"
	recordrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/record"
	rewardrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/reward"
	tokenrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/token"
	"github.com/healthchain/healthchain-backend/internal/auth"
	"github.com/healthchain/healthchain-backend/internal/config"
	"github.com/healthchain/healthchain-backend/internal/offchain"
	"github.com/healthchain/healthchain-backend/internal/service/exchange"
	"github.com/healthchain/healthchain-backend/internal/service/registry"
	"github.com/healthchain/healthchain-backend/internal/service/reward"
	"github.com/healthchain/healthchain-backend/internal/service/token"
	"github.com/healthchain/healthchain-backend/internal/transport/middleware"
	"github.com/healthchain/healthchain-backend/internal/transport/rest"
	"github.com/healthchain/healthchain-backend/migrations"
)

// Run is the application entry point. It loads configuration, applies
// migrations, wires repositories and services, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := applyMigrations(ctx, cfg.Database.DSN); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	records := recordrepo.New(pool)
	listings := listingrepo.New(pool)
	tokens := tokenrepo.New(pool)
	rewards := rewardrepo.New(pool)
	events := eventrepo.New(pool)

	registrySvc := registry.NewService(logger, records, events, txm)
	grantCap, err := registrySvc.IssueExchangeCapability()
	if err != nil {
		return fmt.Errorf("issue exchange capability: %w", err)
	}
	exchangeSvc := exchange.NewService(logger, listings, records, tokens, events, txm, grantCap, cfg.ExchangeOperator())
	rewardSvc := reward.NewService(logger, records, rewards, tokens, events, txm, cfg.RewardPool())
	tokenSvc := token.NewService(logger, tokens, events, txm, cfg.Treasury())
	offchainSvc := offchain.NewService(logger, offchain.NewMemoryEngine(), registrySvc)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Records:  rest.NewRecordHandler(registrySvc, logger),
		Listings: rest.NewListingHandler(exchangeSvc, logger),
		Rewards:  rest.NewRewardHandler(rewardSvc, logger),
		Token:    rest.NewTokenHandler(tokenSvc, logger),
		Offchain: rest.NewOffchainHandler(offchainSvc, logger),
		Events:   rest.NewEventHandler(events, logger),
	})

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMinute),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func applyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
