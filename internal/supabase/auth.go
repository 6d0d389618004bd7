package supabase

import (
	"context"
	"time"

	supa "github.com/nedpals/supabase-go"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

// AuthService delegates credential handling to Supabase Auth (GoTrue). It
// performs no local validation beyond what the backend enforces.
type AuthService struct {
	client *supa.Client
}

func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client.Supabase}
}

func (s *AuthService) SignUp(ctx context.Context, email, password string, data map[string]interface{}) (*models.AuthUser, error) {
	user, err := s.client.Auth.SignUp(ctx, supa.UserCredentials{
		Email:    email,
		Password: password,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}
	return authUserFrom(user), nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.Session, *models.AuthUser, error) {
	details, err := s.client.Auth.SignIn(ctx, supa.UserCredentials{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, nil, err
	}
	return sessionFrom(details), authUserFrom(&details.User), nil
}

func (s *AuthService) SignOut(ctx context.Context, accessToken string) error {
	return s.client.Auth.SignOut(ctx, accessToken)
}

func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (*models.AuthUser, error) {
	user, err := s.client.Auth.User(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return authUserFrom(user), nil
}

func (s *AuthService) Refresh(ctx context.Context, accessToken, refreshToken string) (*models.Session, *models.AuthUser, error) {
	details, err := s.client.Auth.RefreshUser(ctx, accessToken, refreshToken)
	if err != nil {
		return nil, nil, err
	}
	return sessionFrom(details), authUserFrom(&details.User), nil
}

// ResetPassword emails the user a recovery link. The link signs the user in,
// after which UpdatePassword sets the new credential.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	return s.client.Auth.SendMagicLink(ctx, email)
}

func (s *AuthService) UpdatePassword(ctx context.Context, accessToken, newPassword string) error {
	_, err := s.client.Auth.UpdateUser(ctx, accessToken, map[string]interface{}{
		"password": newPassword,
	})
	return err
}

func authUserFrom(user *supa.User) *models.AuthUser {
	if user == nil {
		return nil
	}
	return &models.AuthUser{
		ID:             user.ID,
		Email:          user.Email,
		EmailConfirmed: !user.ConfirmedAt.IsZero(),
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func sessionFrom(details *supa.AuthenticatedDetails) *models.Session {
	if details == nil {
		return nil
	}
	return &models.Session{
		AccessToken:  details.AccessToken,
		TokenType:    details.TokenType,
		RefreshToken: details.RefreshToken,
		ExpiresIn:    details.ExpiresIn,
		ExpiresAt:    time.Now().Add(time.Duration(details.ExpiresIn) * time.Second),
	}
}
