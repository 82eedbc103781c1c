package token

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Transfer moves amount from one account to another. The debit and credit
// share one transaction, so a shortfall leaves both balances untouched.
// Self-transfer is permitted and leaves the balance unchanged.
func (s *Service) Transfer(ctx context.Context, from, to domain.Address, amount int64) error {
	if err := validateParties(from, to); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("transfer of %d: %w", amount, domain.ErrInvalidAmount)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ok, err := s.tokens.Debit(ctx, from, amount)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("transfer %d from %s: %w", amount, from, domain.ErrInsufficientBalance)
		}

		if err := s.tokens.Credit(ctx, to, amount); err != nil {
			return err
		}

		return s.events.Append(ctx, domain.Event{
			Kind:  domain.EventTokenTransfer,
			Actor: from,
			Payload: map[string]any{
				"from":   from.String(),
				"to":     to.String(),
				"amount": amount,
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tokens transferred",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int64("amount", amount),
	)

	return nil
}
