package exchange

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// CreateListing puts a record up for sale. Ownership is checked at call time,
// not at registration: a record id alone is not authority to sell.
// The same record may be listed again after a sale; each purchase grants one
// buyer.
func (s *Service) CreateListing(ctx context.Context, caller domain.Address, id domain.RecordID, price int64) (*domain.Listing, error) {
	if price <= 0 {
		return nil, fmt.Errorf("listing price %d: %w", price, domain.ErrInvalidPrice)
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Owner != caller {
		return nil, fmt.Errorf("list %s by %s: %w", id, caller, domain.ErrNotOwner)
	}

	var created *domain.Listing
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		out, err := s.listings.Create(ctx, &domain.Listing{
			RecordID: id,
			Seller:   caller,
			Price:    price,
		})
		if err != nil {
			return err
		}
		created = out

		return s.events.Append(ctx, domain.Event{
			Kind:      domain.EventListingCreated,
			Actor:     caller,
			RecordID:  &id,
			ListingID: &out.ID,
			Payload:   map[string]any{"price": price},
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "listing created",
		slog.Int64("listing_id", created.ID),
		slog.String("record_id", id.String()),
		slog.Int64("price", price),
	)

	return created, nil
}
