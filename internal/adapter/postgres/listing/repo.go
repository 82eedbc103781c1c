// Package listing implements the marketplace listing repository using
// PostgreSQL. Listing ids come from a global bigserial; a listing row is
// locked FOR UPDATE during a purchase so racing buyers serialize on it.
package listing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Repo provides listing persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new listing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const listingColumns = `id, record_owner, record_seq, seller, price, active, created_at, sold_at, buyer`

const createSQL = `
INSERT INTO listings (record_owner, record_seq, seller, price)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

const getByIDSQL = `
SELECT ` + listingColumns + `
FROM listings
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const markSoldSQL = `
UPDATE listings
SET active = FALSE, sold_at = $2, buyer = $3
WHERE id = $1 AND active`

// Create inserts an active listing and returns it with its allocated id.
func (r *Repo) Create(ctx context.Context, l *domain.Listing) (*domain.Listing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		id        int64
		createdAt time.Time
	)
	err := q.QueryRow(ctx, createSQL,
		l.RecordID.Owner.String(), int64(l.RecordID.Seq), l.Seller.String(), l.Price,
	).Scan(&id, &createdAt)
	if err != nil {
		return nil, postgres.MapError(err, "listing", l.RecordID.String())
	}

	created := *l
	created.ID = id
	created.Active = true
	created.CreatedAt = createdAt
	return &created, nil
}

// GetByID returns a listing by id.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanListing(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "listing", strconv.FormatInt(id, 10))
	}

	return l, nil
}

// GetByIDForUpdate returns a listing by id with its row locked for the
// duration of the surrounding transaction. Must be called inside RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Listing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanListing(q.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "listing", strconv.FormatInt(id, 10))
	}

	return l, nil
}

// MarkSold deactivates a listing and records the buyer and sale time.
// Returns domain.ErrListingInactive if the listing was already sold.
func (r *Repo) MarkSold(ctx context.Context, id int64, buyer domain.Address, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, markSoldSQL, id, at, buyer.String())
	if err != nil {
		return postgres.MapError(err, "listing", strconv.FormatInt(id, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("listing %d: %w", id, domain.ErrListingInactive)
	}

	return nil
}

// List returns listings matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(listingColumns).
		From("listings").
		OrderBy("id DESC").
		PlaceholderFormat(sq.Dollar)

	if !filter.Seller.IsZero() {
		builder = builder.Where(sq.Eq{"seller": filter.Seller.String()})
	}
	if !filter.RecordID.IsZero() {
		builder = builder.Where(sq.Eq{
			"record_owner": filter.RecordID.Owner.String(),
			"record_seq":   int64(filter.RecordID.Seq),
		})
	}
	if filter.ActiveOnly {
		builder = builder.Where(sq.Eq{"active": true})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	return scanListings(rows)
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var (
		id          int64
		recordOwner string
		recordSeq   int64
		seller      string
		price       int64
		active      bool
		createdAt   time.Time
		soldAt      *time.Time
		buyer       *string
	)

	if err := row.Scan(&id, &recordOwner, &recordSeq, &seller, &price, &active, &createdAt, &soldAt, &buyer); err != nil {
		return nil, err
	}

	l := &domain.Listing{
		ID:        id,
		RecordID:  domain.RecordID{Owner: domain.Address(recordOwner), Seq: uint64(recordSeq)},
		Seller:    domain.Address(seller),
		Price:     price,
		Active:    active,
		CreatedAt: createdAt,
		SoldAt:    soldAt,
	}
	if buyer != nil {
		b := domain.Address(*buyer)
		l.Buyer = &b
	}

	return l, nil
}

func scanListings(rows pgx.Rows) ([]*domain.Listing, error) {
	var result []*domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Listing{}
	}

	return result, nil
}
