package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// eventLister defines the minimal interface needed by EventHandler.
type eventLister interface {
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
}

// EventHandler serves the append-only ledger event log.
type EventHandler struct {
	events eventLister
	log    *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(events eventLister, logger *slog.Logger) *EventHandler {
	return &EventHandler{events: events, log: logger.With("handler", "events")}
}

type eventResponse struct {
	ID        string         `json:"id"`
	Kind      string         `json:"kind"`
	Actor     string         `json:"actor"`
	RecordID  *string        `json:"record_id,omitempty"`
	ListingID *int64         `json:"listing_id,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// List handles GET /events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := eventFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.events.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	writeJSON(w, http.StatusOK, out)
}

func eventFilterFromQuery(r *http.Request) (domain.EventFilter, error) {
	var filter domain.EventFilter
	q := r.URL.Query()

	if s := q.Get("kind"); s != "" {
		kind := domain.EventKind(s)
		if !kind.IsValid() {
			return filter, domain.NewValidationError("kind", "unknown event kind")
		}
		filter.Kind = kind
	}
	if s := q.Get("actor"); s != "" {
		actor, err := domain.ParseAddress(s)
		if err != nil {
			return filter, err
		}
		filter.Actor = actor
	}
	if s := q.Get("record_id"); s != "" {
		id, err := domain.ParseRecordID(s)
		if err != nil {
			return filter, err
		}
		filter.RecordID = id
	}
	if s := q.Get("limit"); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}
	if s := q.Get("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil {
			return filter, err
		}
		filter.Offset = offset
	}
	return filter, nil
}

func toEventResponse(ev *domain.Event) eventResponse {
	resp := eventResponse{
		ID:        ev.ID.String(),
		Kind:      ev.Kind.String(),
		Actor:     ev.Actor.String(),
		ListingID: ev.ListingID,
		Payload:   ev.Payload,
		CreatedAt: ev.CreatedAt,
	}
	if ev.RecordID != nil {
		id := ev.RecordID.String()
		resp.RecordID = &id
	}
	return resp
}
