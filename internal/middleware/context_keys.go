package middleware

import (
	"context"
	"log/slog"
)

// contextKey is a private type for request context keys, preventing collisions.
type contextKey string

const (
	loggerCtxKey  = contextKey("logger")
	userIDKey     = contextKey("userID")
	companyIDKey  = contextKey("companyID")
	requestIDName = "X-Request-ID"
)

// GetLoggerFromCtx retrieves the request-scoped logger from the context,
// falling back to the default logger when none is present.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromCtx retrieves the authenticated user ID set by AuthMiddleware.
func GetUserIDFromCtx(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetCompanyIDFromCtx retrieves the authorized acting company ID set by
// CompanyContext. Downstream handlers must use this value and never a company
// identifier taken from unvalidated input.
func GetCompanyIDFromCtx(ctx context.Context) (int64, bool) {
	companyID, ok := ctx.Value(companyIDKey).(int64)
	return companyID, ok
}
