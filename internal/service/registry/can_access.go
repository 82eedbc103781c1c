package registry

import (
	"context"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// CanAccess reports whether an account may read a record: true for the owner
// and for any current grantee.
// Returns domain.ErrNotFound if the record does not exist.
func (s *Service) CanAccess(ctx context.Context, id domain.RecordID, account domain.Address) (bool, error) {
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if rec.Owner == account {
		return true, nil
	}
	return s.records.HasGrant(ctx, id, account)
}

// CanAccessContent is CanAccess keyed by content hash instead of record id.
// The off-chain store uses it to gate payload reads.
func (s *Service) CanAccessContent(ctx context.Context, hash domain.ContentHash, account domain.Address) (bool, error) {
	rec, err := s.records.GetByHash(ctx, hash)
	if err != nil {
		return false, err
	}
	if rec.Owner == account {
		return true, nil
	}
	return s.records.HasGrant(ctx, rec.ID, account)
}
