package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
)

// CompanyContext is the tenant access guard. It resolves the acting company
// for the request (the :companyID path parameter when present, otherwise the
// user's currently selected company), verifies the authenticated user is a
// member, and attaches the authorized company ID to the request context for
// downstream handlers.
func CompanyContext(userSvc portssvc.UserSvcFacade, companySvc portssvc.CompanySvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromCtx(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
			return
		}

		companyID, err := resolveCompanyID(c, userSvc, userID)
		if err != nil {
			logger.Warn("Could not resolve company context", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrMissingCompanyContext.Error()})
			return
		}

		// Membership gate. Role-sensitive operations re-check the specific
		// required role in the service layer.
		if err := companySvc.AuthorizeUserAction(c.Request.Context(), userID, companyID, domain.RoleViewer); err != nil {
			if errors.Is(err, apperrors.ErrForbidden) || errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("User has no access to company", slog.Int64("company_id", companyID))
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Error()})
				return
			}
			logger.Error("Company authorization check failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify company access"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), companyIDKey, companyID)
		enrichedLogger := GetLoggerFromCtx(ctx).With(slog.Int64("company_id", companyID))
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// resolveCompanyID determines the acting company: explicit path parameter
// first, then the user's selected company. The identifier must be a positive
// integer.
func resolveCompanyID(c *gin.Context, userSvc portssvc.UserSvcFacade, userID int64) (int64, error) {
	if param := c.Param("companyID"); param != "" {
		companyID, err := strconv.ParseInt(param, 10, 64)
		if err != nil || companyID <= 0 {
			return 0, apperrors.ErrMissingCompanyContext
		}
		return companyID, nil
	}

	user, err := userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		return 0, apperrors.ErrMissingCompanyContext
	}
	if user.LastCompanyID == nil || *user.LastCompanyID <= 0 {
		return 0, apperrors.ErrMissingCompanyContext
	}
	return *user.LastCompanyID, nil
}
