package domain

import "time"

// User represents a registered user of the application.
type User struct {
	UserID       int64  `json:"userID"` // Primary key (bigserial)
	Name         string `json:"name"`
	Email        string `json:"email"` // Unique
	PasswordHash string `json:"-"`
	// LastCompanyID is the company the user most recently selected. The tenant
	// guard falls back to it when a request carries no explicit company.
	LastCompanyID          *int64     `json:"lastCompanyID,omitempty"`
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}

// GoogleUserInfo holds the subset of the Google userinfo payload we consume
// during OAuth sign-in.
type GoogleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
