package services

import (
	"context"
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade handles JWT access tokens and rotating refresh tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its expiry.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks a presented refresh token against the stored
	// hash and expiry for the user, returning the user on success.
	ValidateRefreshToken(ctx context.Context, userID int64, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade handles the Google OAuth sign-in flow.
type GoogleOAuthSvcFacade interface {
	// GenerateStateString creates a CSRF state token for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetLoginURL returns the Google consent URL for the given state.
	GetLoginURL(ctx context.Context, state string) string

	// ExchangeCodeForToken exchanges an authorization code for an OAuth token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GetUserInfo fetches the user's Google profile with the OAuth token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)

	// ValidateIDToken verifies a Google ID token and returns its payload.
	ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
