package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the token bundle issued by Supabase Auth. Its lifecycle
// (issuance, expiry, revocation) is owned by the backend; this struct only
// carries what the client needs to act on behalf of the user.
type Session struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthUser is the Supabase Auth identity, optionally extended with the
// application profile row once it has been loaded.
type AuthUser struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	EmailConfirmed bool      `json:"email_confirmed"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Profile        *Profile  `json:"profile,omitempty"`
}

// Profile is the application record in the users table, keyed by the auth
// user id.
type Profile struct {
	ID                    uuid.UUID  `json:"id"`
	Email                 string     `json:"email"`
	FullName              string     `json:"full_name"`
	PhoneNumber           *string    `json:"phone_number,omitempty"`
	District              *string    `json:"district,omitempty"`
	Sector                *string    `json:"sector,omitempty"`
	Cell                  *string    `json:"cell,omitempty"`
	EmergencyContactName  *string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string    `json:"emergency_contact_phone,omitempty"`
	InsuranceProvider     *string    `json:"insurance_provider,omitempty"`
	InsuranceNumber       *string    `json:"insurance_number,omitempty"`
	IsVerified            bool       `json:"is_verified"`
	IsActive              bool       `json:"is_active"`
	LastLoginAt           *time.Time `json:"last_login_at,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
