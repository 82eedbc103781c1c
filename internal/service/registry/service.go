// Package registry implements the record registry: content-addressed record
// registration with per-owner sequence allocation, and the access-control
// state machine (owner grants, revocations, access checks).
package registry

import (
	"context"
	"log/slog"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// maxRegisterAttempts bounds the retry loop for lost sequence races.
// Collisions only happen when one owner registers concurrently with itself,
// so a couple of retries is plenty.
const maxRegisterAttempts = 3

type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	GetByID(ctx context.Context, id domain.RecordID) (*domain.Record, error)
	GetByHash(ctx context.Context, hash domain.ContentHash) (*domain.Record, error)
	ListByOwner(ctx context.Context, owner domain.Address) ([]*domain.Record, error)
	ListAccessible(ctx context.Context, grantee domain.Address) ([]*domain.Record, error)
	Grant(ctx context.Context, id domain.RecordID, grantee domain.Address) (bool, error)
	Revoke(ctx context.Context, id domain.RecordID, grantee domain.Address) (bool, error)
	HasGrant(ctx context.Context, id domain.RecordID, account domain.Address) (bool, error)
}

type eventRepo interface {
	Append(ctx context.Context, ev domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides record registry operations.
type Service struct {
	records recordRepo
	events  eventRepo
	tx      txManager
	log     *slog.Logger

	capMu     sync.Mutex
	capIssued bool
}

// NewService creates a new registry service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	events eventRepo,
	tx txManager,
) *Service {
	return &Service{
		records: records,
		events:  events,
		tx:      tx,
		log:     log.With("service", "registry"),
	}
}
