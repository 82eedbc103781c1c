package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/internal/service/reward"
)

// rewardService defines the minimal interface needed by RewardHandler.
type rewardService interface {
	CanClaim(ctx context.Context, owner domain.Address) (*reward.ClaimStatus, error)
	ClaimReward(ctx context.Context, caller domain.Address, id domain.RecordID, steps int64) (*reward.ClaimResult, error)
}

// RewardHandler serves reward engine REST endpoints.
type RewardHandler struct {
	svc rewardService
	log *slog.Logger
}

// NewRewardHandler creates a RewardHandler.
func NewRewardHandler(svc rewardService, logger *slog.Logger) *RewardHandler {
	return &RewardHandler{svc: svc, log: logger.With("handler", "rewards")}
}

type claimRequest struct {
	RecordID string `json:"record_id"`
	Steps    int64  `json:"steps"`
}

type claimStatusResponse struct {
	CanClaim    bool       `json:"can_claim"`
	Reason      string     `json:"reason,omitempty"`
	NextClaimAt *time.Time `json:"next_claim_at,omitempty"`
}

type claimResultResponse struct {
	Reward    int64     `json:"reward"`
	Steps     int64     `json:"steps"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// Status handles GET /rewards/status.
func (h *RewardHandler) Status(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	status, err := h.svc.CanClaim(r.Context(), caller)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, claimStatusResponse{
		CanClaim:    status.CanClaim,
		Reason:      status.Reason,
		NextClaimAt: status.NextClaimAt,
	})
}

// Claim handles POST /rewards/claims.
func (h *RewardHandler) Claim(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req claimRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := domain.ParseRecordID(req.RecordID)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.svc.ClaimReward(r.Context(), caller, id, req.Steps)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, claimResultResponse{
		Reward:    result.Reward,
		Steps:     result.Steps,
		ClaimedAt: result.ClaimedAt,
	})
}
