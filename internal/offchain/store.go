package offchain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Blob is one stored payload plus the fields its content hash commits to.
type Blob struct {
	StorageID uuid.UUID
	Hash      domain.ContentHash
	Owner     domain.Address
	Category  string
	Payload   []byte
	Metadata  map[string]string
	StoredAt  time.Time
}

// Engine persists blobs by content hash. Implementations must be safe for
// concurrent use.
type Engine interface {
	Put(ctx context.Context, blob *Blob) error
	Get(ctx context.Context, hash domain.ContentHash) (*Blob, error)
}

// accessChecker answers whether an account may read the record carrying a
// content hash. Implemented by the registry service.
type accessChecker interface {
	CanAccessContent(ctx context.Context, hash domain.ContentHash, account domain.Address) (bool, error)
}

// Service is the off-chain store facade: hashing on write, access-checked and
// tamper-evident reads.
type Service struct {
	engine Engine
	access accessChecker
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new off-chain store service.
func NewService(log *slog.Logger, engine Engine, access accessChecker) *Service {
	return &Service{
		engine: engine,
		access: access,
		log:    log.With("service", "offchain"),
		now:    time.Now,
	}
}

// StoreResult identifies a stored payload.
type StoreResult struct {
	Hash      domain.ContentHash
	StorageID uuid.UUID
	StoredAt  time.Time
}

// Store hashes and persists a payload on behalf of owner. The same inputs
// stored at the same second produce the same hash; the returned hash is what
// the owner registers on the ledger.
func (s *Service) Store(ctx context.Context, owner domain.Address, category string, payload []byte, metadata map[string]string) (*StoreResult, error) {
	if err := owner.Validate(); err != nil {
		return nil, domain.NewValidationError("owner", err.Error())
	}
	if category == "" {
		return nil, domain.NewValidationError("category", "must not be empty")
	}
	if len(payload) == 0 {
		return nil, domain.NewValidationError("payload", "must not be empty")
	}

	storedAt := s.now().UTC().Truncate(time.Second)
	hash := ComputeHash(owner, category, payload, storedAt.Unix())

	blob := &Blob{
		StorageID: uuid.New(),
		Hash:      hash,
		Owner:     owner,
		Category:  category,
		Payload:   payload,
		Metadata:  metadata,
		StoredAt:  storedAt,
	}
	if err := s.engine.Put(ctx, blob); err != nil {
		return nil, fmt.Errorf("store payload: %w", err)
	}

	s.log.InfoContext(ctx, "payload stored",
		slog.String("owner", owner.String()),
		slog.String("hash", hash.String()),
		slog.String("storage_id", blob.StorageID.String()),
	)

	return &StoreResult{Hash: hash, StorageID: blob.StorageID, StoredAt: storedAt}, nil
}

// Fetch returns the payload for a hash if the caller is the owner or holds
// ledger access to the record carrying it. The blob is re-hashed before it is
// returned; a stored payload that no longer matches its hash is refused.
func (s *Service) Fetch(ctx context.Context, hash domain.ContentHash, caller domain.Address) (*Blob, error) {
	blob, err := s.engine.Get(ctx, hash)
	if err != nil {
		return nil, err
	}

	if blob.Owner != caller {
		ok, err := s.access.CanAccessContent(ctx, hash, caller)
		if err != nil {
			// A hash stored here but never registered is visible to its
			// owner only.
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("payload %s: %w", hash, domain.ErrUnauthorized)
			}
			return nil, fmt.Errorf("check access: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("payload %s: %w", hash, domain.ErrUnauthorized)
		}
	}

	if !Verify(blob.Hash, blob.Owner, blob.Category, blob.Payload, blob.StoredAt.Unix()) {
		return nil, fmt.Errorf("payload %s: stored content does not match its hash", hash)
	}

	return blob, nil
}
