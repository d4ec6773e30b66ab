package dto

import (
	"time"

	"github.com/openbookshq/openbooks/internal/core/domain"
)

// RegisterUserRequest defines data for registering a new user.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines data for password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines data returned for a user.
type UserResponse struct {
	UserID        int64     `json:"userID"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	LastCompanyID *int64    `json:"lastCompanyID,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Name:          u.Name,
		Email:         u.Email,
		LastCompanyID: u.LastCompanyID,
		CreatedAt:     u.CreatedAt,
	}
}

// LoginResponse defines the data returned after a successful login or refresh.
// The refresh token itself travels in an HTTP-only cookie, not the body.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
}

// GoogleTokenSignInRequest defines data for signing in with a Google ID token.
type GoogleTokenSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
