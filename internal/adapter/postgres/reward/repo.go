// Package reward implements the per-owner reward account repository using
// PostgreSQL. The claim path locks the owner's row FOR UPDATE so concurrent
// claims by the same owner serialize on the cooldown check.
package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Repo provides reward account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reward account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const accountColumns = `owner, total_steps_claimed, total_rewards_paid, last_claim_time, claim_count`

const getSQL = `
SELECT ` + accountColumns + `
FROM reward_accounts
WHERE owner = $1`

const ensureSQL = `
INSERT INTO reward_accounts (owner)
VALUES ($1)
ON CONFLICT (owner) DO NOTHING`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const applyClaimSQL = `
UPDATE reward_accounts
SET total_steps_claimed = total_steps_claimed + $2,
    total_rewards_paid  = total_rewards_paid + $3,
    last_claim_time     = $4,
    claim_count         = claim_count + 1
WHERE owner = $1`

// Get returns the owner's reward account. Owners who have never claimed get
// a zero-valued account, not an error.
func (r *Repo) Get(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	acc, err := scanAccount(q.QueryRow(ctx, getSQL, owner.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.RewardAccount{Owner: owner}, nil
		}
		return nil, fmt.Errorf("reward account %s: %w", owner, err)
	}

	return acc, nil
}

// GetForUpdate returns the owner's reward account with its row locked for the
// duration of the surrounding transaction, creating the row on first use.
// Must be called inside RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, owner domain.Address) (*domain.RewardAccount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, ensureSQL, owner.String()); err != nil {
		return nil, postgres.MapError(err, "reward_account", owner.String())
	}

	acc, err := scanAccount(q.QueryRow(ctx, getForUpdateSQL, owner.String()))
	if err != nil {
		return nil, postgres.MapError(err, "reward_account", owner.String())
	}

	return acc, nil
}

// ApplyClaim folds a successful claim into the owner's aggregates.
func (r *Repo) ApplyClaim(ctx context.Context, owner domain.Address, steps, reward int64, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, applyClaimSQL, owner.String(), steps, reward, at)
	if err != nil {
		return postgres.MapError(err, "reward_account", owner.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reward_account %s: %w", owner, domain.ErrNotFound)
	}

	return nil
}

func scanAccount(row pgx.Row) (*domain.RewardAccount, error) {
	var (
		owner      string
		steps      int64
		paid       int64
		lastClaim  *time.Time
		claimCount int64
	)

	if err := row.Scan(&owner, &steps, &paid, &lastClaim, &claimCount); err != nil {
		return nil, err
	}

	return &domain.RewardAccount{
		Owner:             domain.Address(owner),
		TotalStepsClaimed: steps,
		TotalRewardsPaid:  paid,
		LastClaimTime:     lastClaim,
		ClaimCount:        claimCount,
	}, nil
}
