package registry

import (
	"context"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// GetRecord returns a record by id.
// Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetRecord(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	return s.records.GetByID(ctx, id)
}

// ListRecordsByOwner returns all records registered by an owner, oldest first.
func (s *Service) ListRecordsByOwner(ctx context.Context, owner domain.Address) ([]*domain.Record, error) {
	if err := owner.Validate(); err != nil {
		return nil, domain.NewValidationError("owner", err.Error())
	}
	return s.records.ListByOwner(ctx, owner)
}

// ListAccessibleRecords returns records the account was granted access to
// (not its own), in grant order.
func (s *Service) ListAccessibleRecords(ctx context.Context, account domain.Address) ([]*domain.Record, error) {
	if err := account.Validate(); err != nil {
		return nil, domain.NewValidationError("account", err.Error())
	}
	return s.records.ListAccessible(ctx, account)
}
