package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/internal/offchain"
)

// offchainService defines the minimal interface needed by OffchainHandler.
type offchainService interface {
	Store(ctx context.Context, owner domain.Address, category string, payload []byte, metadata map[string]string) (*offchain.StoreResult, error)
	Fetch(ctx context.Context, hash domain.ContentHash, caller domain.Address) (*offchain.Blob, error)
}

// OffchainHandler serves off-chain payload storage endpoints. Payloads live
// outside the ledger; only their content hashes are registered.
type OffchainHandler struct {
	svc offchainService
	log *slog.Logger
}

// NewOffchainHandler creates an OffchainHandler.
func NewOffchainHandler(svc offchainService, logger *slog.Logger) *OffchainHandler {
	return &OffchainHandler{svc: svc, log: logger.With("handler", "offchain")}
}

type storeRequest struct {
	Category string            `json:"category"`
	Payload  []byte            `json:"payload"` // base64 in JSON
	Metadata map[string]string `json:"metadata,omitempty"`
}

type storeResponse struct {
	ContentHash string    `json:"content_hash"`
	StorageID   string    `json:"storage_id"`
	StoredAt    time.Time `json:"stored_at"`
}

type blobResponse struct {
	ContentHash string            `json:"content_hash"`
	Owner       string            `json:"owner"`
	Category    string            `json:"category"`
	Payload     []byte            `json:"payload"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	StoredAt    time.Time         `json:"stored_at"`
}

// Store handles POST /offchain/data.
func (h *OffchainHandler) Store(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req storeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Store(r.Context(), caller, req.Category, req.Payload, req.Metadata)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, storeResponse{
		ContentHash: result.Hash.String(),
		StorageID:   result.StorageID.String(),
		StoredAt:    result.StoredAt,
	})
}

// Fetch handles GET /offchain/data/{hash}.
func (h *OffchainHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	hash, err := domain.ParseContentHash(r.PathValue("hash"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	blob, err := h.svc.Fetch(r.Context(), hash, caller)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, blobResponse{
		ContentHash: blob.Hash.String(),
		Owner:       blob.Owner.String(),
		Category:    blob.Category,
		Payload:     blob.Payload,
		Metadata:    blob.Metadata,
		StoredAt:    blob.StoredAt,
	})
}
