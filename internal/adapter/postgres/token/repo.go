// Package token implements the fungible token ledger repository using
// PostgreSQL. Balance and allowance movements are conditional UPDATEs: a
// statement that affects zero rows means the funds (or the approval) were not
// there, and the caller maps that to the matching domain error. The balance
// CHECK constraint makes a negative balance unrepresentable.
package token

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Repo provides token balance and allowance persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const balanceSQL = `SELECT balance FROM token_balances WHERE account = $1`

const creditSQL = `
INSERT INTO token_balances (account, balance)
VALUES ($1, $2)
ON CONFLICT (account) DO UPDATE SET balance = token_balances.balance + EXCLUDED.balance`

const debitSQL = `
UPDATE token_balances
SET balance = balance - $2
WHERE account = $1 AND balance >= $2`

const allowanceSQL = `SELECT amount FROM token_allowances WHERE owner = $1 AND spender = $2`

const setAllowanceSQL = `
INSERT INTO token_allowances (owner, spender, amount)
VALUES ($1, $2, $3)
ON CONFLICT (owner, spender) DO UPDATE SET amount = EXCLUDED.amount`

const consumeAllowanceSQL = `
UPDATE token_allowances
SET amount = amount - $3
WHERE owner = $1 AND spender = $2 AND amount >= $3`

// Balance returns an account's balance. Accounts the ledger has never seen
// hold zero.
func (r *Repo) Balance(ctx context.Context, account domain.Address) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var balance int64
	err := q.QueryRow(ctx, balanceSQL, account.String()).Scan(&balance)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("balance %s: %w", account, err)
	}

	return balance, nil
}

// Credit adds amount to an account, creating the row if needed.
func (r *Repo) Credit(ctx context.Context, account domain.Address, amount int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, creditSQL, account.String(), amount); err != nil {
		return postgres.MapError(err, "balance", account.String())
	}

	return nil
}

// Debit subtracts amount from an account if the balance covers it.
// Returns false (and no error) when the balance is short.
func (r *Repo) Debit(ctx context.Context, account domain.Address, amount int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, debitSQL, account.String(), amount)
	if err != nil {
		return false, postgres.MapError(err, "balance", account.String())
	}

	return tag.RowsAffected() > 0, nil
}

func isNoRows(err error) bool { return errors.Is(err, pgx.ErrNoRows) }

// Allowance returns how much spender may move out of owner's balance.
func (r *Repo) Allowance(ctx context.Context, owner, spender domain.Address) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var amount int64
	err := q.QueryRow(ctx, allowanceSQL, owner.String(), spender.String()).Scan(&amount)
	if err != nil {
		if isNoRows(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("allowance %s->%s: %w", owner, spender, err)
	}

	return amount, nil
}

// SetAllowance sets (not adds) the spender's allowance.
func (r *Repo) SetAllowance(ctx context.Context, owner, spender domain.Address, amount int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, setAllowanceSQL, owner.String(), spender.String(), amount); err != nil {
		return postgres.MapError(err, "allowance", owner.String())
	}

	return nil
}

// ConsumeAllowance subtracts amount from an allowance if it covers it.
// Returns false (and no error) when the allowance is short.
func (r *Repo) ConsumeAllowance(ctx context.Context, owner, spender domain.Address, amount int64) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, consumeAllowanceSQL, owner.String(), spender.String(), amount)
	if err != nil {
		return false, postgres.MapError(err, "allowance", owner.String())
	}

	return tag.RowsAffected() > 0, nil
}
