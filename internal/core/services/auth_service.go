package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService issues JWT access tokens and rotating opaque refresh tokens.
// Refresh tokens are stored hashed; the raw value travels only in an
// HTTP-only cookie.
type tokenService struct {
	userRepo      portsrepo.UserRepositoryFacade
	jwtSecret     string
	jwtIssuer     string
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewTokenService creates a new TokenService.
func NewTokenService(userRepo portsrepo.UserRepositoryFacade, jwtSecret, jwtIssuer string, accessExpiry, refreshExpiry time.Duration) portssvc.TokenSvcFacade {
	return &tokenService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtIssuer:     jwtIssuer,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT access token for the user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.accessExpiry)
	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.accessExpiry, s.jwtIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken creates a new opaque refresh token, stores its hash on
// the user row (rotating out any previous token) and returns the raw value.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(s.refreshExpiry)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(raw), &expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return raw, expiresAt, nil
}

// ValidateRefreshToken checks a presented refresh token against the stored
// hash and expiry. Every failure mode maps to ErrUnauthenticated so the
// response does not distinguish a revoked token from a forged one.
func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID int64, refreshToken string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load user for refresh: %w", err)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		logger.Warn("Refresh rejected: no stored token", slog.Int64("user_id", userID))
		return nil, apperrors.ErrUnauthenticated
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		logger.Warn("Refresh rejected: token expired", slog.Int64("user_id", userID))
		return nil, apperrors.ErrUnauthenticated
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash) {
		logger.Warn("Refresh rejected: hash mismatch", slog.Int64("user_id", userID))
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// googleOAuthService implements the Google OAuth sign-in flow.
type googleOAuthService struct {
	oauthConfig *oauth2.Config
	clientID    string
}

// NewGoogleOAuthService creates a new GoogleOAuthService.
func NewGoogleOAuthService(clientID, clientSecret, redirectURL string) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		clientID: clientID,
	}
}

var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// GenerateStateString creates a CSRF state token for the redirect flow.
func (s *googleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	return utils.GenerateSecureRandomString(16)
}

// GetLoginURL returns the Google consent URL for the given state.
func (s *googleOAuthService) GetLoginURL(ctx context.Context, state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCodeForToken exchanges an authorization code for an OAuth token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// GetUserInfo fetches the user's Google profile with the OAuth token.
func (s *googleOAuthService) GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch google userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google userinfo request returned status %d", resp.StatusCode)
	}

	var info domain.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode google userinfo: %w", err)
	}
	return &info, nil
}

// ValidateIDToken verifies a Google ID token against our client ID.
func (s *googleOAuthService) ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid google id token", apperrors.ErrUnauthenticated)
	}
	return payload, nil
}
