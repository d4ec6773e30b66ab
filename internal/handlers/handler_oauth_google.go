package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/platform/config"
)

const oauthStateCookieName = "oauth_state"

// googleOAuthHandler implements the Google sign-in flows: the redirect flow
// for browsers and the ID-token flow for clients that obtained a token
// themselves.
type googleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

func newGoogleOAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *googleOAuthHandler {
	return &googleOAuthHandler{
		oauthService: services.GoogleOAuth,
		userService:  services.User,
		tokenService: services.Token,
		cfg:          cfg,
	}
}

func registerGoogleOAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	if cfg.GoogleClientID == "" {
		return
	}
	h := newGoogleOAuthHandler(services, cfg)

	google := r.Group("/api/v1/auth/google")
	{
		google.GET("/login", h.redirectToGoogle)
		google.GET("/callback", h.handleCallback)
		google.POST("/token", h.signInWithIDToken)
	}
}

// redirectToGoogle starts the consent flow. The CSRF state lands in a
// short-lived cookie and must round-trip through Google untouched.
func (h *googleOAuthHandler) redirectToGoogle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		logger.Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start sign-in"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookieName, state, 600, "/api/v1/auth/google", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetLoginURL(c.Request.Context(), state))
}

// handleCallback completes the redirect flow.
func (h *googleOAuthHandler) handleCallback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth callback with bad state")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid oauth state", Code: "UNAUTHENTICATED"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing authorization code", Code: "INVALID_PAYLOAD"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Sign-in failed", Code: "UNAUTHENTICATED"})
		return
	}

	info, err := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch google profile", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Sign-in failed", Code: "UNAUTHENTICATED"})
		return
	}

	h.completeSignIn(c, *info)
}

// signInWithIDToken completes the token flow: the client presents a Google ID
// token it already holds.
func (h *googleOAuthHandler) signInWithIDToken(c *gin.Context) {
	var req dto.GoogleTokenSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Code: "INVALID_PAYLOAD"})
		return
	}

	payload, err := h.oauthService.ValidateIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}

	info := domain.GoogleUserInfo{}
	if sub, ok := payload.Claims["sub"].(string); ok {
		info.ID = sub
	}
	if email, ok := payload.Claims["email"].(string); ok {
		info.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		info.Name = name
	}

	h.completeSignIn(c, info)
}

// completeSignIn resolves (or provisions) the local user and issues a session.
func (h *googleOAuthHandler) completeSignIn(c *gin.Context, info domain.GoogleUserInfo) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), info)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(user),
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	})
}
