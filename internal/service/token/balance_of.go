package token

import (
	"context"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// BalanceOf returns an account's balance. Unknown accounts hold zero.
func (s *Service) BalanceOf(ctx context.Context, account domain.Address) (int64, error) {
	if err := validateParties(account); err != nil {
		return 0, err
	}
	return s.tokens.Balance(ctx, account)
}

// Allowance returns how much spender may move out of owner's balance.
func (s *Service) Allowance(ctx context.Context, owner, spender domain.Address) (int64, error) {
	if err := validateParties(owner, spender); err != nil {
		return 0, err
	}
	return s.tokens.Allowance(ctx, owner, spender)
}
