package exchange

import (
	"context"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// GetListing returns a listing by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetListing(ctx context.Context, id int64) (*domain.Listing, error) {
	return s.listings.GetByID(ctx, id)
}

// ListListings returns listings matching the filter, newest first.
func (s *Service) ListListings(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	if !filter.Seller.IsZero() {
		if err := filter.Seller.Validate(); err != nil {
			return nil, domain.NewValidationError("seller", err.Error())
		}
	}
	return s.listings.List(ctx, filter)
}
