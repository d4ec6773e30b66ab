package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbookshq/openbooks/internal/apperrors"
	"github.com/openbookshq/openbooks/internal/core/domain"
	portsrepo "github.com/openbookshq/openbooks/internal/core/ports/repositories"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
	"github.com/openbookshq/openbooks/internal/utils"
)

// userService handles user registration, credentials and session bookkeeping.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new user with a bcrypt-hashed password.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check email uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", slog.Int64("user_id", saved.UserID))
	return saved, nil
}

// AuthenticateUser verifies email/password credentials.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password so the response does not reveal
			// whether the email exists.
			return nil, apperrors.ErrUnauthenticated
		}
		logger.Error("Failed to look up user by email", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Password mismatch", slog.Int64("user_id", user.UserID))
		return nil, apperrors.ErrUnauthenticated
	}

	return user, nil
}

// GetUserByID retrieves a user by identifier.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// FindOrCreateGoogleUser resolves a user from verified Google profile data.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if info.Email == "" {
		return nil, fmt.Errorf("%w: google profile has no email", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up google user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// First sign-in: provision an account without a usable password. A random
	// bcrypt hash keeps password login closed until the user sets one.
	random, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder credential: %w", err)
	}
	hash, err := utils.HashPassword(random)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder credential: %w", err)
	}

	now := time.Now().UTC()
	newUser := domain.User{
		Name:         info.Name,
		Email:        info.Email,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saved, err := s.userRepo.SaveUser(ctx, newUser)
	if err != nil {
		logger.Error("Failed to provision google user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}

	logger.Info("User provisioned via Google sign-in", slog.Int64("user_id", saved.UserID))
	return saved, nil
}

// SetLastCompany records the user's currently selected company.
func (s *userService) SetLastCompany(ctx context.Context, userID, companyID int64) error {
	return s.userRepo.UpdateLastCompany(ctx, userID, companyID)
}

// StoreRefreshToken persists the hash of a newly issued refresh token.
func (s *userService) StoreRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, tokenHash, &expiresAt)
}

// ClearRefreshToken removes the stored refresh token (logout).
func (s *userService) ClearRefreshToken(ctx context.Context, userID int64) error {
	return s.userRepo.UpdateRefreshToken(ctx, userID, "", nil)
}
