package registry

import (
	"context"
	"fmt"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// ExchangeGrantCapability lets its holder insert access grants without owning
// the record. The registry issues exactly one, at wiring time, to the
// exchange — it is how a purchase can grant access to a record the buyer does
// not own, while every other path stays owner-only.
type ExchangeGrantCapability struct {
	svc *Service
}

// IssueExchangeCapability hands out the single exchange grant capability.
// A second call fails: nothing but the configured exchange may hold it.
func (s *Service) IssueExchangeCapability() (*ExchangeGrantCapability, error) {
	s.capMu.Lock()
	defer s.capMu.Unlock()

	if s.capIssued {
		return nil, fmt.Errorf("exchange grant capability already issued: %w", domain.ErrUnauthorized)
	}
	s.capIssued = true
	return &ExchangeGrantCapability{svc: s}, nil
}

// AuthorizeExchangeGrant inserts an access grant on behalf of the exchange.
// Called inside the purchase transaction; the exchange emits the purchase
// event, so no event is written here.
func (c *ExchangeGrantCapability) AuthorizeExchangeGrant(ctx context.Context, id domain.RecordID, grantee domain.Address) error {
	if c == nil || c.svc == nil {
		return fmt.Errorf("exchange grant: %w", domain.ErrUnauthorized)
	}
	_, err := c.svc.records.Grant(ctx, id, grantee)
	return err
}
