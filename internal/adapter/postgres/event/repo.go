// Package event implements the append-only ledger event log using PostgreSQL.
// Events are written in the same transaction as the mutation they describe,
// so the log never disagrees with ledger state.
package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/healthchain/healthchain-backend/internal/adapter/postgres"
	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Repo provides event log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, kind, actor, record_owner, record_seq, listing_id, payload, created_at`

const appendSQL = `
INSERT INTO ledger_events (id, kind, actor, record_owner, record_seq, listing_id, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at`

// Append writes one event row. A zero event id is allocated here.
func (r *Repo) Append(ctx context.Context, ev domain.Event) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if !ev.Kind.IsValid() {
		return fmt.Errorf("event %s: unknown kind %q", ev.ID, ev.Kind)
	}

	payload, err := json.Marshal(ev.Payload)
	if err != nil {
		return fmt.Errorf("event %s: marshal payload: %w", ev.ID, err)
	}
	if ev.Payload == nil {
		payload = []byte(`{}`)
	}

	var (
		recordOwner *string
		recordSeq   *int64
	)
	if ev.RecordID != nil {
		o := ev.RecordID.Owner.String()
		s := int64(ev.RecordID.Seq)
		recordOwner, recordSeq = &o, &s
	}

	var createdAt time.Time
	err = q.QueryRow(ctx, appendSQL,
		ev.ID, ev.Kind.String(), ev.Actor.String(), recordOwner, recordSeq, ev.ListingID, payload,
	).Scan(&createdAt)
	if err != nil {
		return postgres.MapError(err, "event", ev.ID.String())
	}

	return nil
}

// List returns events matching the filter in insertion order.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	builder := sq.Select(eventColumns).
		From("ledger_events").
		OrderBy("created_at", "id").
		PlaceholderFormat(sq.Dollar)

	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": filter.Kind.String()})
	}
	if !filter.Actor.IsZero() {
		builder = builder.Where(sq.Eq{"actor": filter.Actor.String()})
	}
	if !filter.RecordID.IsZero() {
		builder = builder.Where(sq.Eq{
			"record_owner": filter.RecordID.Owner.String(),
			"record_seq":   int64(filter.RecordID.Seq),
		})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	var result []*domain.Event
	for rows.Next() {
		var (
			id          uuid.UUID
			kind        string
			actor       string
			recordOwner *string
			recordSeq   *int64
			listingID   *int64
			payload     []byte
			createdAt   time.Time
		)

		if err := rows.Scan(&id, &kind, &actor, &recordOwner, &recordSeq, &listingID, &payload, &createdAt); err != nil {
			return nil, err
		}

		ev := &domain.Event{
			ID:        id,
			Kind:      domain.EventKind(kind),
			Actor:     domain.Address(actor),
			ListingID: listingID,
			CreatedAt: createdAt,
		}
		if recordOwner != nil && recordSeq != nil {
			rid := domain.RecordID{Owner: domain.Address(*recordOwner), Seq: uint64(*recordSeq)}
			ev.RecordID = &rid
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &ev.Payload); err != nil {
				return nil, fmt.Errorf("unmarshal event payload: %w", err)
			}
		}

		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Event{}
	}

	return result, nil
}
