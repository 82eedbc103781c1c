package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/healthchain/healthchain-backend/internal/domain"
	"github.com/healthchain/healthchain-backend/pkg/ctxutil"
)

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps domain sentinel errors to HTTP status codes. Anything
// unrecognized is a 500 and gets logged; the mapped errors are caller
// mistakes and stay at info-free response level.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotOwner):
		writeError(w, http.StatusForbidden, "caller is not the owner")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateHash),
		errors.Is(err, domain.ErrListingInactive),
		errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrInsufficientAllowance),
		errors.Is(err, domain.ErrBelowThreshold),
		errors.Is(err, domain.ErrPoolExhausted):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrCooldownActive):
		writeError(w, http.StatusTooManyRequests, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireAccount extracts the authenticated account or writes a 401.
func requireAccount(w http.ResponseWriter, r *http.Request) (domain.Address, bool) {
	account, ok := ctxutil.AccountFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return "", false
	}
	return account, true
}

func recordIDFromPath(r *http.Request) (domain.RecordID, error) {
	return domain.ParseRecordID(r.PathValue("id"))
}
