package token

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Mint creates new tokens on an account. Only the configured treasury may
// mint; it is how the reward pool and seed balances get funded.
func (s *Service) Mint(ctx context.Context, caller, to domain.Address, amount int64) error {
	if err := validateParties(caller, to); err != nil {
		return err
	}
	if caller != s.treasury {
		return fmt.Errorf("mint by %s: %w", caller, domain.ErrUnauthorized)
	}
	if amount <= 0 {
		return fmt.Errorf("mint %d: %w", amount, domain.ErrInvalidAmount)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.tokens.Credit(ctx, to, amount); err != nil {
			return err
		}

		return s.events.Append(ctx, domain.Event{
			Kind:  domain.EventTokenTransfer,
			Actor: caller,
			Payload: map[string]any{
				"to":     to.String(),
				"amount": amount,
				"minted": true,
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tokens minted",
		slog.String("to", to.String()),
		slog.Int64("amount", amount),
	)

	return nil
}
