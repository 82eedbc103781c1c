package ctxutil

import (
	"context"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

type ctxKey string

const (
	accountKey   ctxKey = "account"
	requestIDKey ctxKey = "request_id"
)

// WithAccount stores the authenticated account address in the context.
func WithAccount(ctx context.Context, addr domain.Address) context.Context {
	return context.WithValue(ctx, accountKey, addr)
}

// AccountFromCtx extracts the authenticated account address from the context.
// Returns false if the value is missing, empty, or the wrong type.
func AccountFromCtx(ctx context.Context) (domain.Address, bool) {
	addr, ok := ctx.Value(accountKey).(domain.Address)
	if !ok || addr.IsZero() {
		return "", false
	}
	return addr, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
