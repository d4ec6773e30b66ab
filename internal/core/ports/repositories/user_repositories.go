package repositories

import (
	"context"
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by their unique identifier.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user and returns it with the assigned identifier.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)

	// UpdateLastCompany records the user's currently selected company.
	UpdateLastCompany(ctx context.Context, userID int64, companyID int64) error

	// UpdateRefreshToken stores the hash and expiry of the user's refresh token.
	// An empty hash clears the stored token (logout).
	UpdateRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt *time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
