// Command fund mints tokens from the treasury to an account. It is the
// operational tool for seeding user balances and topping up the reward pool.
//
// Flags:
//
//	--to      recipient address (default: the configured reward pool)
//	--amount  amount to mint (required, > 0)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	eventrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/event"
	tokenrepo "github.com/healthchain/healthchain-backend/internal/adapter/postgres/token"
	"github.com/healthchain/healthchain-backend/internal/app"
	"github.com/healthchain/healthchain-backend/internal/config"
	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/internal/service/token"
)

func main() {
	toFlag := flag.String("to", "", "recipient address (default: reward pool)")
	amountFlag := flag.Int64("amount", 0, "amount to mint")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	to := cfg.RewardPool()
	if *toFlag != "" {
		to, err = domain.ParseAddress(*toFlag)
		if err != nil {
			logger.Error("parse recipient", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	if *amountFlag <= 0 {
		logger.Error("amount must be positive", slog.Int64("amount", *amountFlag))
		os.Exit(1)
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := token.NewService(logger, tokenrepo.New(pool), eventrepo.New(pool), postgres.NewTxManager(pool), cfg.Treasury())

	if err := svc.Mint(ctx, cfg.Treasury(), to, *amountFlag); err != nil {
		logger.Error("mint", slog.String("error", err.Error()))
		os.Exit(1)
	}

	balance, err := svc.BalanceOf(ctx, to)
	if err != nil {
		logger.Error("read balance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("minted",
		slog.String("to", to.String()),
		slog.Int64("amount", *amountFlag),
		slog.Int64("balance", balance),
	)
}
