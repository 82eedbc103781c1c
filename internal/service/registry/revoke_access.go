package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// RevokeAccess removes a grantee's access. Revoking an account that was never
// granted is a no-op (and emits no event). Only the owner may revoke; access
// bought through the exchange is revocable like any other grant.
func (s *Service) RevokeAccess(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error {
	if err := grantee.Validate(); err != nil {
		return domain.NewValidationError("grantee", err.Error())
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Owner != caller {
		return fmt.Errorf("revoke on %s by %s: %w", id, caller, domain.ErrNotOwner)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		removed, err := s.records.Revoke(ctx, id, grantee)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}

		return s.events.Append(ctx, domain.Event{
			Kind:     domain.EventAccessRevoked,
			Actor:    caller,
			RecordID: &id,
			Payload:  map[string]any{"grantee": grantee.String()},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "access revoked",
		slog.String("record_id", id.String()),
		slog.String("grantee", grantee.String()),
	)

	return nil
}
