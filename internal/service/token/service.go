// Package token implements the fungible token ledger: balances, transfers,
// and allowance-based transfers on behalf of another account. The exchange
// and the reward engine move value exclusively through this service.
package token

import (
	"context"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

type tokenRepo interface {
	Balance(ctx context.Context, account domain.Address) (int64, error)
	Credit(ctx context.Context, account domain.Address, amount int64) error
	Debit(ctx context.Context, account domain.Address, amount int64) (bool, error)
	Allowance(ctx context.Context, owner, spender domain.Address) (int64, error)
	SetAllowance(ctx context.Context, owner, spender domain.Address, amount int64) error
	ConsumeAllowance(ctx context.Context, owner, spender domain.Address, amount int64) (bool, error)
}

type eventRepo interface {
	Append(ctx context.Context, ev domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides token ledger operations.
type Service struct {
	tokens   tokenRepo
	events   eventRepo
	tx       txManager
	treasury domain.Address
	log      *slog.Logger
}

// NewService creates a new token service. treasury is the only account
// allowed to mint.
func NewService(
	log *slog.Logger,
	tokens tokenRepo,
	events eventRepo,
	tx txManager,
	treasury domain.Address,
) *Service {
	return &Service{
		tokens:   tokens,
		events:   events,
		tx:       tx,
		treasury: treasury,
		log:      log.With("service", "token"),
	}
}

func validateParties(addrs ...domain.Address) error {
	for _, a := range addrs {
		if err := a.Validate(); err != nil {
			return domain.NewValidationError("address", err.Error())
		}
	}
	return nil
}
