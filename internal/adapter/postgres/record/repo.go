// Package record implements the record registry repository using PostgreSQL.
// It owns the records table (append-only) and the access_grants relation.
// Per-owner sequence allocation happens in the insert itself; the (owner, seq)
// primary key turns concurrent allocations of the same sequence into a unique
// violation the service layer retries.
package record

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Repo provides record and access-grant persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO records (owner, seq, content_hash, category, locator, metrics)
VALUES ($1, (SELECT COALESCE(MAX(seq), 0) + 1 FROM records WHERE owner = $1), $2, $3, $4, $5)
RETURNING seq, created_at`

const getByIDSQL = `
SELECT owner, seq, content_hash, category, locator, metrics, created_at
FROM records
WHERE owner = $1 AND seq = $2`

const listByOwnerSQL = `
SELECT owner, seq, content_hash, category, locator, metrics, created_at
FROM records
WHERE owner = $1
ORDER BY seq`

const listAccessibleSQL = `
SELECT r.owner, r.seq, r.content_hash, r.category, r.locator, r.metrics, r.created_at
FROM access_grants g
JOIN records r ON r.owner = g.record_owner AND r.seq = g.record_seq
WHERE g.grantee = $1
ORDER BY g.created_at`

const existsByHashSQL = `SELECT EXISTS (SELECT 1 FROM records WHERE content_hash = $1)`

const getByHashSQL = `
SELECT owner, seq, content_hash, category, locator, metrics, created_at
FROM records
WHERE content_hash = $1`

const grantSQL = `
INSERT INTO access_grants (record_owner, record_seq, grantee)
VALUES ($1, $2, $3)
ON CONFLICT (record_owner, record_seq, grantee) DO NOTHING`

const revokeSQL = `
DELETE FROM access_grants
WHERE record_owner = $1 AND record_seq = $2 AND grantee = $3`

const hasGrantSQL = `
SELECT EXISTS (
    SELECT 1 FROM access_grants
    WHERE record_owner = $1 AND record_seq = $2 AND grantee = $3
)`

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// Create inserts a record, allocating the next per-owner sequence (starting
// at 1), and returns the persisted domain.Record.
// Returns domain.ErrDuplicateHash if the content hash exists anywhere in the
// ledger, and domain.ErrConflict if a concurrent registration by the same
// owner won the sequence race (the caller retries).
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	metrics, err := marshalMetrics(rec.Metrics)
	if err != nil {
		return nil, fmt.Errorf("record %s: %w", rec.Owner, err)
	}

	var (
		seq       int64
		createdAt time.Time
	)
	err = q.QueryRow(ctx, createSQL,
		rec.Owner.String(), rec.ContentHash.String(), rec.Category, rec.Locator, metrics,
	).Scan(&seq, &createdAt)
	if err != nil {
		return nil, postgres.MapError(err, "record", rec.Owner.String())
	}

	created := *rec
	created.ID = domain.RecordID{Owner: rec.Owner, Seq: uint64(seq)}
	created.CreatedAt = createdAt
	return &created, nil
}

// GetByID returns a record by its id.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id domain.RecordID) (*domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, getByIDSQL, id.Owner.String(), int64(id.Seq))
	rec, err := scanRecord(row)
	if err != nil {
		return nil, postgres.MapError(err, "record", id.String())
	}

	return rec, nil
}

// ListByOwner returns all records registered by an owner, oldest first.
// Returns an empty slice (not nil) when the owner has no records.
func (r *Repo) ListByOwner(ctx context.Context, owner domain.Address) ([]*domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByOwnerSQL, owner.String())
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListAccessible returns records a non-owner account has been granted access
// to, in grant order. Returns an empty slice (not nil) when there are none.
func (r *Repo) ListAccessible(ctx context.Context, grantee domain.Address) ([]*domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listAccessibleSQL, grantee.String())
	if err != nil {
		return nil, fmt.Errorf("list accessible records: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetByHash returns the record carrying a content hash. Hashes are globally
// unique, so at most one record matches.
// Returns domain.ErrNotFound if no record carries it.
func (r *Repo) GetByHash(ctx context.Context, hash domain.ContentHash) (*domain.Record, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(q.QueryRow(ctx, getByHashSQL, hash.String()))
	if err != nil {
		return nil, postgres.MapError(err, "record", hash.String())
	}

	return rec, nil
}

// ExistsByHash reports whether any record carries the given content hash.
func (r *Repo) ExistsByHash(ctx context.Context, hash domain.ContentHash) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsByHashSQL, hash.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists by hash: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Access grants
// ---------------------------------------------------------------------------

// Grant creates an access grant. Idempotent: granting twice is not an error.
// Returns true if a new grant row was created.
// Returns domain.ErrNotFound if the record does not exist (FK violation).
func (r *Repo) Grant(ctx context.Context, id domain.RecordID, grantee domain.Address) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, grantSQL, id.Owner.String(), int64(id.Seq), grantee.String())
	if err != nil {
		return false, postgres.MapError(err, "access_grant", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// Revoke removes an access grant. Revoking a non-existent grant is a no-op.
// Returns true if a grant row was removed.
func (r *Repo) Revoke(ctx context.Context, id domain.RecordID, grantee domain.Address) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, revokeSQL, id.Owner.String(), int64(id.Seq), grantee.String())
	if err != nil {
		return false, postgres.MapError(err, "access_grant", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// HasGrant reports whether an explicit grant row exists for the account.
// The owner's implicit access is the service layer's concern.
func (r *Repo) HasGrant(ctx context.Context, id domain.RecordID, account domain.Address) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx, hasGrantSQL, id.Owner.String(), int64(id.Seq), account.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has grant: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var (
		owner     string
		seq       int64
		hash      string
		category  string
		locator   string
		metrics   []byte
		createdAt time.Time
	)

	if err := row.Scan(&owner, &seq, &hash, &category, &locator, &metrics, &createdAt); err != nil {
		return nil, err
	}

	return buildRecord(owner, seq, hash, category, locator, metrics, createdAt)
}

func scanRecords(rows pgx.Rows) ([]*domain.Record, error) {
	var result []*domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Record{}
	}

	return result, nil
}

func buildRecord(owner string, seq int64, hash, category, locator string, metrics []byte, createdAt time.Time) (*domain.Record, error) {
	rec := &domain.Record{
		ID:          domain.RecordID{Owner: domain.Address(owner), Seq: uint64(seq)},
		Owner:       domain.Address(owner),
		ContentHash: domain.ContentHash(hash),
		Category:    category,
		Locator:     locator,
		CreatedAt:   createdAt,
	}

	if len(metrics) > 0 {
		var m domain.ActivityMetrics
		if err := json.Unmarshal(metrics, &m); err != nil {
			return nil, fmt.Errorf("unmarshal metrics: %w", err)
		}
		rec.Metrics = &m
	}

	return rec, nil
}

func marshalMetrics(m *domain.ActivityMetrics) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metrics: %w", err)
	}
	return raw, nil
}
