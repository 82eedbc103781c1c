package token

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// TransferFrom moves amount from one account to another on the authority of a
// prior approval. The allowance is consumed before the balance moves; both
// happen in one transaction, so a failure at either step changes nothing.
func (s *Service) TransferFrom(ctx context.Context, spender, from, to domain.Address, amount int64) error {
	if err := validateParties(spender, from, to); err != nil {
		return err
	}
	if amount <= 0 {
		return fmt.Errorf("transfer of %d: %w", amount, domain.ErrInvalidAmount)
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ok, err := s.tokens.ConsumeAllowance(ctx, from, spender, amount)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("spend %d of %s by %s: %w", amount, from, spender, domain.ErrInsufficientAllowance)
		}

		ok, err = s.tokens.Debit(ctx, from, amount)
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
			Actor: spender,
			Payload: map[string]any{
				"from":    from.String(),
				"to":      to.String(),
				"amount":  amount,
				"spender": spender.String(),
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tokens transferred on behalf",
		slog.String("spender", spender.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int64("amount", amount),
	)

	return nil
}
