package token

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Approve sets (not adds to) the spender's allowance over owner's balance.
// Amount zero clears a previous approval.
func (s *Service) Approve(ctx context.Context, owner, spender domain.Address, amount int64) error {
	if err := validateParties(owner, spender); err != nil {
		return err
	}
	if amount < 0 {
		return fmt.Errorf("approve %d: %w", amount, domain.ErrInvalidAmount)
	}

	if err := s.tokens.SetAllowance(ctx, owner, spender, amount); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "allowance set",
		slog.String("owner", owner.String()),
		slog.String("spender", spender.String()),
		slog.Int64("amount", amount),
	)

	return nil
}
