package auth

import (
	"context"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

// Authenticator is the slice of Supabase Auth the session manager depends
// on. Implemented by supabase.AuthService; faked in tests.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string, data map[string]interface{}) (*models.AuthUser, error)
	SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthUser, error)
	SignOut(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, accessToken string) (*models.AuthUser, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*models.Session, *models.AuthUser, error)
	ResetPassword(ctx context.Context, email string) error
	UpdatePassword(ctx context.Context, accessToken, newPassword string) error
}

// ProfileStore is the users table surface the session manager depends on.
// Implemented by supabase.UserStore; faked in tests.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	CreateProfile(ctx context.Context, userID, email string, input models.ProfileInput) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID string, fields map[string]interface{}) (*models.Profile, error)
	TouchLastLogin(ctx context.Context, userID string) error
}

// TokenStore persists the current session's tokens between runs, the way a
// browser client keeps them in local storage.
type TokenStore interface {
	Load() (accessToken, refreshToken string, err error)
	Save(accessToken, refreshToken string) error
	Clear() error
}
