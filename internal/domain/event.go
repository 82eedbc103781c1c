package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names a ledger mutation.
type EventKind string

const (
	EventRecordRegistered EventKind = "record.registered"
	EventAccessGranted    EventKind = "access.granted"
	EventAccessRevoked    EventKind = "access.revoked"
	EventListingCreated   EventKind = "listing.created"
	EventAccessPurchased  EventKind = "access.purchased"
	EventRewardClaimed    EventKind = "reward.claimed"
	EventTokenTransfer    EventKind = "token.transfer"
)

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventRecordRegistered, EventAccessGranted, EventAccessRevoked,
		EventListingCreated, EventAccessPurchased, EventRewardClaimed,
		EventTokenTransfer:
		return true
	}
	return false
}

// Event is one row of the append-only ledger event log. Every successful
// mutating operation writes its event in the same transaction, so consumers
// can reconstruct current state by folding events in insertion order.
type Event struct {
	ID        uuid.UUID
	Kind      EventKind
	Actor     Address
	RecordID  *RecordID
	ListingID *int64
	Payload   map[string]any
	CreatedAt time.Time
}

// EventFilter narrows event log reads. Zero values mean "any".
type EventFilter struct {
	Kind     EventKind
	Actor    Address
	RecordID RecordID
	Limit    int
	Offset   int
}
