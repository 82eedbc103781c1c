package exchange

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// BuyAccess executes the atomic purchase: lock the listing, consume the
// buyer's allowance to the exchange operator, move the price buyer→seller,
// deactivate the listing, and grant the buyer access — all in one
// transaction. Racing buyers serialize on the listing row lock; exactly one
// wins, the rest see ErrListingInactive. A buyer purchasing their own listing
// is a permitted degenerate self-transfer.
func (s *Service) BuyAccess(ctx context.Context, buyer domain.Address, listingID int64) error {
	if err := buyer.Validate(); err != nil {
		return domain.NewValidationError("buyer", err.Error())
	}

	var bought *domain.Listing
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		l, err := s.listings.GetByIDForUpdate(ctx, listingID)
		if err != nil {
			return err
		}
		if !l.Active {
			return fmt.Errorf("listing %d: %w", listingID, domain.ErrListingInactive)
		}

		ok, err := s.tokens.ConsumeAllowance(ctx, buyer, s.operator, l.Price)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("listing %d: buyer %s: %w", listingID, buyer, domain.ErrInsufficientAllowance)
		}

		ok, err = s.tokens.Debit(ctx, buyer, l.Price)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("listing %d: buyer %s: %w", listingID, buyer, domain.ErrInsufficientBalance)
		}

		if err := s.tokens.Credit(ctx, l.Seller, l.Price); err != nil {
			return err
		}

		if err := s.listings.MarkSold(ctx, l.ID, buyer, s.now().UTC()); err != nil {
			return err
		}

		if err := s.granter.AuthorizeExchangeGrant(ctx, l.RecordID, buyer); err != nil {
			return err
		}

		bought = l
		return s.events.Append(ctx, domain.Event{
			Kind:      domain.EventAccessPurchased,
			Actor:     buyer,
			RecordID:  &l.RecordID,
			ListingID: &l.ID,
			Payload: map[string]any{
				"seller": l.Seller.String(),
				"price":  l.Price,
			},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "access purchased",
		slog.Int64("listing_id", bought.ID),
		slog.String("record_id", bought.RecordID.String()),
		slog.String("buyer", buyer.String()),
		slog.Int64("price", bought.Price),
	)

	return nil
}
