// Package reward implements the move-to-earn engine: activity step counts
// convert to token payouts from a funded pool, rate-limited by a per-owner
// cooldown and capped per claim.
package reward

import (
	"context"
	"log/slog"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

type recordRepo interface {
	GetByID(ctx context.Context, id domain.RecordID) (*domain.Record, error)
}

type rewardRepo interface {
	Get(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error)
	GetForUpdate(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error)
	ApplyClaim(ctx context.Context, owner domain.Address, steps, reward int64, at time.Time) error
}

type tokenRepo interface {
	Credit(ctx context.Context, account domain.Address, amount int64) error
	Debit(ctx context.Context, account domain.Address, amount int64) (bool, error)
}

type eventRepo interface {
	Append(ctx context.Context, ev domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides reward claim operations.
type Service struct {
	records recordRepo
	rewards rewardRepo
	tokens  tokenRepo
	events  eventRepo
	tx      txManager
	pool    domain.Address
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new reward service. pool is the account payouts are
// drawn from; once it is empty, claims fail with ErrPoolExhausted.
func NewService(
	log *slog.Logger,
	records recordRepo,
	rewards rewardRepo,
	tokens tokenRepo,
	events eventRepo,
	tx txManager,
	pool domain.Address,
) *Service {
	return &Service{
		records: records,
		rewards: rewards,
		tokens:  tokens,
		events:  events,
		tx:      tx,
		pool:    pool,
		log:     log.With("service", "reward"),
		now:     time.Now,
	}
}
