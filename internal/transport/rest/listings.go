package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// exchangeService defines the minimal interface needed by ListingHandler.
type exchangeService interface {
	CreateListing(ctx context.Context, caller domain.Address, id domain.RecordID, price int64) (*domain.Listing, error)
	GetListing(ctx context.Context, id int64) (*domain.Listing, error)
	ListListings(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error)
	BuyAccess(ctx context.Context, buyer domain.Address, listingID int64) error
}

// ListingHandler serves marketplace REST endpoints.
type ListingHandler struct {
	svc exchangeService
	log *slog.Logger
}

// NewListingHandler creates a ListingHandler.
func NewListingHandler(svc exchangeService, logger *slog.Logger) *ListingHandler {
	return &ListingHandler{svc: svc, log: logger.With("handler", "listings")}
}

type createListingRequest struct {
	RecordID string `json:"record_id"`
	Price    int64  `json:"price"`
}

type listingResponse struct {
	ID        int64      `json:"id"`
	RecordID  string     `json:"record_id"`
	Seller    string     `json:"seller"`
	Price     int64      `json:"price"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	SoldAt    *time.Time `json:"sold_at,omitempty"`
	Buyer     *string    `json:"buyer,omitempty"`
}

// Create handles POST /listings.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req createListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := domain.ParseRecordID(req.RecordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.svc.CreateListing(r.Context(), caller, id, req.Price)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toListingResponse(listing))
}

// Get handles GET /listings/{id}.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := listingIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	listing, err := h.svc.GetListing(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListingResponse(listing))
}

// List handles GET /listings.
func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := listingFilterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listings, err := h.svc.ListListings(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]listingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, toListingResponse(l))
	}
	writeJSON(w, http.StatusOK, out)
}

// Purchase handles POST /listings/{id}/purchase.
func (h *ListingHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	id, err := listingIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid listing id")
		return
	}

	if err := h.svc.BuyAccess(r.Context(), caller, id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func listingIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func listingFilterFromQuery(r *http.Request) (domain.ListingFilter, error) {
	var filter domain.ListingFilter
	q := r.URL.Query()

	if s := q.Get("seller"); s != "" {
		seller, err := domain.ParseAddress(s)
		if err != nil {
			return filter, err
		}
		filter.Seller = seller
	}
	if s := q.Get("record_id"); s != "" {
		id, err := domain.ParseRecordID(s)
		if err != nil {
			return filter, err
		}
		filter.RecordID = id
	}
	filter.ActiveOnly = q.Get("active") == "true"
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

func toListingResponse(l *domain.Listing) listingResponse {
	resp := listingResponse{
		ID:        l.ID,
		RecordID:  l.RecordID.String(),
		Seller:    l.Seller.String(),
		Price:     l.Price,
		Active:    l.Active,
		CreatedAt: l.CreatedAt,
		SoldAt:    l.SoldAt,
	}
	if l.Buyer != nil {
		buyer := l.Buyer.String()
		resp.Buyer = &buyer
	}
	return resp
}
