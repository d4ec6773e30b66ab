package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/utils/accounting"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// UnbalancedEntryResponse carries both totals so the client can show the
// exact discrepancy that was rejected.
type UnbalancedEntryResponse struct {
	Error        string `json:"error"`
	Code         string `json:"code"`
	TotalDebits  string `json:"totalDebits"`
	TotalCredits string `json:"totalCredits"`
}

// respondError maps a service error onto the HTTP status and body contract.
// Unknown errors become an opaque 500; their detail stays in the logs.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var unbalanced *accounting.UnbalancedEntryError
	var invalidAmount *accounting.InvalidAmountError
	var crossTenant *accounting.CrossTenantReferenceError

	switch {
	case errors.Is(err, accounting.ErrEmptyEntry):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "EMPTY_ENTRY"})
	case errors.As(err, &unbalanced):
		c.JSON(http.StatusBadRequest, UnbalancedEntryResponse{
			Error:        unbalanced.Error(),
			Code:         "UNBALANCED_ENTRY",
			TotalDebits:  unbalanced.TotalDebits.String(),
			TotalCredits: unbalanced.TotalCredits.String(),
		})
	case errors.As(err, &invalidAmount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidAmount.Error(), Code: "INVALID_AMOUNT"})
	case errors.As(err, &crossTenant):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: crossTenant.Error(), Code: "CROSS_TENANT_REFERENCE"})
	case errors.Is(err, apperrors.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthenticated", Code: "UNAUTHENTICATED"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden", Code: "FORBIDDEN"})
	case errors.Is(err, apperrors.ErrMissingCompanyContext):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No company selected", Code: "MISSING_COMPANY_CONTEXT"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found", Code: "NOT_FOUND"})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrConstraintViolation):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error(), Code: "CONFLICT"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: "INVALID_PAYLOAD"})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requestUserID pulls the authenticated user from the request context. The
// auth middleware guarantees it on protected routes.
func requestUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthenticated", Code: "UNAUTHENTICATED"})
		return 0, false
	}
	return userID, true
}

// requestCompanyID pulls the resolved tenant from the request context. The
// company context middleware guarantees it on company-scoped routes.
func requestCompanyID(c *gin.Context) (int64, bool) {
	companyID, ok := middleware.GetCompanyIDFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No company selected", Code: "MISSING_COMPANY_CONTEXT"})
		return 0, false
	}
	return companyID, true
}
