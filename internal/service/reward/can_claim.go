package reward

import (
	"context"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// ClaimStatus reports whether an owner may claim right now, and when the
// cooldown opens if not.
type ClaimStatus struct {
	CanClaim    bool
	Reason      string
	NextClaimAt *time.Time
}

// CanClaim is the read-only cooldown check. It takes no locks: the answer is
// advisory and ClaimReward re-checks under the account row lock.
func (s *Service) CanClaim(ctx context.Context, owner domain.Address) (*ClaimStatus, error) {
	if err := owner.Validate(); err != nil {
		return nil, domain.NewValidationError("owner", err.Error())
	}

	acc, err := s.rewards.Get(ctx, owner)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if acc.CanClaimAt(now) {
		return &ClaimStatus{CanClaim: true}, nil
	}

	next := acc.NextClaimAt()
	return &ClaimStatus{
		CanClaim:    false,
		Reason:      "cooldown active",
		NextClaimAt: &next,
	}, nil
}
