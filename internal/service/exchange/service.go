// Package exchange implements the marketplace: sellers list records they own
// at a price, buyers pay through the token ledger and receive an access grant
// in the same transaction. Payment without access, or access without payment,
// is never observable.
package exchange

import (
	"context"
	"log/slog"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

type listingRepo interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*domain.Listing, error)
	MarkSold(ctx context.Context, id int64, buyer domain.Address, at time.Time) error
	List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
}

type recordRepo interface {
	GetByID(ctx context.Context, id domain.RecordID) (*domain.Record, error)
}

type tokenRepo interface {
	Credit(ctx context.Context, account domain.Address, amount int64) error
	Debit(ctx context.Context, account domain.Address, amount int64) (bool, error)
	ConsumeAllowance(ctx context.Context, owner, spender domain.Address, amount int64) (bool, error)
}

type eventRepo interface {
	Append(ctx context.Context, ev domain.Event) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// accessGranter is the registry capability that lets the exchange insert
// grants for records the buyer does not own.
type accessGranter interface {
	AuthorizeExchangeGrant(ctx context.Context, id domain.RecordID, grantee domain.Address) error
}

// Service provides marketplace operations.
type Service struct {
	listings listingRepo
	records  recordRepo
	tokens   tokenRepo
	events   eventRepo
	tx       txManager
	granter  accessGranter
	operator domain.Address
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new exchange service. operator is the address buyers
// approve allowances for; granter is the capability issued by the registry.
func NewService(
	log *slog.Logger,
	listings listingRepo,
	records recordRepo,
	tokens tokenRepo,
	events eventRepo,
	tx txManager,
	granter accessGranter,
	operator domain.Address,
) *Service {
	return &Service{
		listings: listings,
		records:  records,
		tokens:   tokens,
		events:   events,
		tx:       tx,
		granter:  granter,
		operator: operator,
		log:      log.With("service", "exchange"),
		now:      time.Now,
	}
}
