package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// tokenService defines the minimal interface needed by TokenHandler.
type tokenService interface {
	BalanceOf(ctx context.Context, account domain.Address) (int64, error)
	Allowance(ctx context.Context, owner, spender domain.Address) (int64, error)
	Transfer(ctx context.Context, from, to domain.Address, amount int64) error
	TransferFrom(ctx context.Context, spender, from, to domain.Address, amount int64) error
	Approve(ctx context.Context, owner, spender domain.Address, amount int64) error
}

// TokenHandler serves token ledger REST endpoints.
type TokenHandler struct {
	svc tokenService
	log *slog.Logger
}

// NewTokenHandler creates a TokenHandler.
func NewTokenHandler(svc tokenService, logger *slog.Logger) *TokenHandler {
	return &TokenHandler{svc: svc, log: logger.With("handler", "token")}
}

type transferRequest struct {
	// From is optional; when set and different from the caller, the transfer
	// is executed against the caller's allowance on the From account.
	From   string `json:"from,omitempty"`
	To     string `json:"to"`
	Amount int64  `json:"amount"`
}

type approveRequest struct {
	Spender string `json:"spender"`
	Amount  int64  `json:"amount"`
}

type balanceResponse struct {
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

type allowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance int64  `json:"allowance"`
}

// Balance handles GET /token/balance. The account query parameter defaults
// to the authenticated caller.
func (h *TokenHandler) Balance(w http.ResponseWriter, r *http.Request) {
	account, ok := ctxAccountOrQuery(w, r, "account")
	if !ok {
		return
	}

	balance, err := h.svc.BalanceOf(r.Context(), account)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, balanceResponse{Account: account.String(), Balance: balance})
}

// GetAllowance handles GET /token/allowance.
func (h *TokenHandler) GetAllowance(w http.ResponseWriter, r *http.Request) {
	owner, ok := ctxAccountOrQuery(w, r, "owner")
	if !ok {
		return
	}

	spender, err := domain.ParseAddress(r.URL.Query().Get("spender"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	allowance, err := h.svc.Allowance(r.Context(), owner, spender)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, allowanceResponse{
		Owner:     owner.String(),
		Spender:   spender.String(),
		Allowance: allowance,
	})
}

// Transfer handles POST /token/transfers.
func (h *TokenHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	to, err := domain.ParseAddress(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.From != "" {
		from, err := domain.ParseAddress(req.From)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if from != caller {
			if err := h.svc.TransferFrom(r.Context(), caller, from, to, req.Amount); err != nil {
				handleError(w, r, h.log, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
	}

	if err := h.svc.Transfer(r.Context(), caller, to, req.Amount); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Approve handles POST /token/approvals.
func (h *TokenHandler) Approve(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireAccount(w, r)
	if !ok {
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	spender, err := domain.ParseAddress(req.Spender)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Approve(r.Context(), caller, spender, req.Amount); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ctxAccountOrQuery resolves an address from the named query parameter,
// falling back to the authenticated caller when the parameter is absent.
func ctxAccountOrQuery(w http.ResponseWriter, r *http.Request, param string) (domain.Address, bool) {
	if s := r.URL.Query().Get(param); s != "" {
		account, err := domain.ParseAddress(s)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return "", false
		}
		return account, true
	}
	return requireAccount(w, r)
}
