package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/platform/config"
)

// authHandler handles registration, login and refresh-token rotation.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

func newAuthHandler(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{userService: userService, tokenService: tokenService, cfg: cfg}
}

// registerAuthRoutes sets up the public authentication routes. Credential
// endpoints are rate limited per client IP.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token, cfg)
	limit := newAuthRateLimiter(cfg)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", limit, h.register)
		auth.POST("/login", limit, h.login)
		auth.POST("/refresh", limit, h.refresh)
		auth.POST("/logout", h.logout)
	}
}

// setRefreshCookie writes the refresh token as an HTTP-only cookie. The value
// carries the user ID so the refresh endpoint can find the stored hash
// without an access token.
func (h *authHandler) setRefreshCookie(c *gin.Context, userID int64, token string, maxAge int) {
	value := fmt.Sprintf("%d.%s", userID, token)
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.RefreshTokenCookieName, value, maxAge, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
}

// parseRefreshCookie splits the cookie back into user ID and raw token.
func (h *authHandler) parseRefreshCookie(c *gin.Context) (int64, string, bool) {
	value, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		return 0, "", false
	}
	idStr, token, found := strings.Cut(value, ".")
	if !found {
		return 0, "", false
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", false
	}
	return userID, token, true
}

// register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterUserRequest true "Registration data"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: "INVALID_PAYLOAD"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueSession(c, user)
}

// refresh godoc
// @Summary Rotate the refresh token and issue a new access token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	userID, token, ok := h.parseRefreshCookie(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthenticated", Code: "UNAUTHENTICATED"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), userID, token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.issueSession(c, user)
}

// logout godoc
// @Summary Log out and revoke the refresh token
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if userID, _, ok := h.parseRefreshCookie(c); ok {
		if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
			logger.Warn("Failed to clear refresh token on logout", slog.String("error", err.Error()))
		}
	}
	// Expire the cookie regardless; logout must always succeed client-side.
	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}

// issueSession creates an access token plus rotated refresh token for the
// user and writes the login response.
func (h *authHandler) issueSession(c *gin.Context, user *domain.User) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.setRefreshCookie(c, user.UserID, refreshToken, int(time.Until(refreshExpiry).Seconds()))

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	})
}
