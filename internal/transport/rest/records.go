package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/internal/service/registry"
)

// registryService defines the minimal interface needed by RecordHandler.
type registryService interface {
	Register(ctx context.Context, owner domain.Address, input registry.RegisterInput) (*domain.Record, error)
	GetRecord(ctx context.Context, id domain.RecordID) (*domain.Record, error)
	ListRecordsByOwner(ctx context.Context, owner domain.Address) ([]*domain.Record, error)
	ListAccessibleRecords(ctx context.Context, account domain.Address) ([]*domain.Record, error)
	GrantAccess(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error
	RevokeAccess(ctx context.Context, caller domain.Address, id domain.RecordID, grantee domain.Address) error
	CanAccess(ctx context.Context, id domain.RecordID, account domain.Address) (bool, error)
}

// RecordHandler serves record registry REST endpoints.
type RecordHandler struct {
	svc registryService
	log *slog.Logger
}

// NewRecordHandler creates a RecordHandler.
func NewRecordHandler(svc registryService, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{svc: svc, log: logger.With("handler", "records")}
}

type registerRequest struct {
	ContentHash string                  `json:"content_hash"`
	Category    string                  `json:"category"`
	Locator     string                  `json:"locator"`
	Metrics     *domain.ActivityMetrics `json:"metrics,omitempty"`
}

type recordResponse struct {
	ID          string                  `json:"id"`
	Owner       string                  `json:"owner"`
	ContentHash string                  `json:"content_hash"`
	Category    string                  `json:"category"`
	Locator     string                  `json:"locator"`
	Metrics     *domain.ActivityMetrics `json:"metrics,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

type grantRequest struct {
	Grantee string `json:"grantee"`
}

type accessResponse struct {
	CanAccess bool `json:"can_access"`
}

// Register handles POST /records.
func (h *RecordHandler) Register(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Register(r.Context(), caller, registry.RegisterInput{
		ContentHash: domain.ContentHash(req.ContentHash),
		Category:    req.Category,
		Locator:     req.Locator,
		Metrics:     req.Metrics,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecordResponse(rec))
}

// Get handles GET /records/{id}.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := recordIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.svc.GetRecord(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}

// Mine handles GET /records.
func (h *RecordHandler) Mine(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	records, err := h.svc.ListRecordsByOwner(r.Context(), caller)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// Accessible handles GET /records/accessible.
func (h *RecordHandler) Accessible(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	records, err := h.svc.ListAccessibleRecords(r.Context(), caller)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponses(records))
}

// Grant handles POST /records/{id}/grants.
func (h *RecordHandler) Grant(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req grantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	grantee, err := domain.ParseAddress(req.Grantee)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.GrantAccess(r.Context(), caller, id, grantee); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Revoke handles DELETE /records/{id}/grants/{address}.
func (h *RecordHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	id, err := recordIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	grantee, err := domain.ParseAddress(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.RevokeAccess(r.Context(), caller, id, grantee); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckAccess handles GET /records/{id}/access/{address}.
func (h *RecordHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	id, err := recordIDFromPath(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	account, err := domain.ParseAddress(r.PathValue("address"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	allowed, err := h.svc.CanAccess(r.Context(), id, account)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, accessResponse{CanAccess: allowed})
}

func toRecordResponse(rec *domain.Record) recordResponse {
	return recordResponse{
		ID:          rec.ID.String(),
		Owner:       rec.Owner.String(),
		ContentHash: rec.ContentHash.String(),
		Category:    rec.Category,
		Locator:     rec.Locator,
		Metrics:     rec.Metrics,
		CreatedAt:   rec.CreatedAt,
	}
}

func toRecordResponses(records []*domain.Record) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toRecordResponse(rec))
	}
	return out
}
