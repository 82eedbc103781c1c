package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// GrantAccess lets the record owner grant read access to another account.
// Idempotent: granting an existing grantee again changes nothing and emits no
// event. Granting to the owner is a no-op (owners always have access).
func (s *Service) GrantAccess(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error {
	if err := grantee.Validate(); err != nil {
		return domain.NewValidationError("grantee", err.Error())
	}

	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rec.Owner != caller {
		return fmt.Errorf("grant on %s by %s: %w", id, caller, domain.ErrNotOwner)
	}
	if grantee == rec.Owner {
		return nil
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		inserted, err := s.records.Grant(ctx, id, grantee)
		if err != nil {
			return err
		}
		if !inserted {
			return nil
		}

		return s.events.Append(ctx, domain.Event{
			Kind:     domain.EventAccessGranted,
			Actor:    caller,
			RecordID: &id,
			Payload:  map[string]any{"grantee": grantee.String()},
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "access granted",
		slog.String("record_id", id.String()),
		slog.String("grantee", grantee.String()),
	)

	return nil
}
