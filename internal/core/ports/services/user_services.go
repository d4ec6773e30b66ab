package services

import (
	"context"
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
	"github.com/openbookshq/openbooks/internal/dto"
)

// UserSvcFacade defines user account operations.
type UserSvcFacade interface {
	// RegisterUser creates a new user with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies email/password credentials and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by identifier.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindOrCreateGoogleUser resolves a user from verified Google profile data,
	// creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// SetLastCompany records the user's currently selected company.
	SetLastCompany(ctx context.Context, userID, companyID int64) error

	// StoreRefreshToken persists the hash of a newly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken removes the stored refresh token (logout).
	ClearRefreshToken(ctx context.Context, userID int64) error
}
