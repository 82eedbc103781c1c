package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Register creates a record owned by owner, allocating the next sequence in
// the owner's id space. The insert and the ledger event commit together.
// A lost sequence race against a concurrent registration by the same owner is
// retried; a duplicate content hash (any owner) fails with ErrDuplicateHash.
func (s *Service) Register(ctx context.Context, owner domain.Address, input RegisterInput) (*domain.Record, error) {
	if err := owner.Validate(); err != nil {
		return nil, domain.NewValidationError("owner", err.Error())
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec := &domain.Record{
		Owner:       owner,
		ContentHash: input.ContentHash,
		Category:    strings.TrimSpace(input.Category),
		Locator:     strings.TrimSpace(input.Locator),
		Metrics:     input.Metrics,
	}

	var created *domain.Record
	for attempt := 1; ; attempt++ {
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			out, err := s.records.Create(ctx, rec)
			if err != nil {
				return err
			}
			created = out

			return s.events.Append(ctx, domain.Event{
				Kind:     domain.EventRecordRegistered,
				Actor:    owner,
				RecordID: &out.ID,
				Payload: map[string]any{
					"content_hash": out.ContentHash.String(),
					"category":     out.Category,
				},
			})
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConflict) && attempt < maxRegisterAttempts {
			continue
		}
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("register for %s: %d sequence races lost: %w", owner, attempt, domain.ErrConflict)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "record registered",
		slog.String("record_id", created.ID.String()),
		slog.String("owner", owner.String()),
		slog.String("category", created.Category),
	)

	return created, nil
}
