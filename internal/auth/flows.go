package auth

import (
	"context"
	"log"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

// SignUpWithProfile creates the credentials, then inserts the profile row.
// The insert is best-effort: auth succeeded independently, so a profile
// failure is logged and reported via the boolean, not the error.
func SignUpWithProfile(ctx context.Context, authenticator Authenticator, profiles ProfileStore, email, password string, profile models.ProfileInput) (*models.AuthUser, bool, error) {
	user, err := authenticator.SignUp(ctx, email, password, signupMetadata(profile))
	if err != nil {
		return nil, false, err
	}

	if profiles == nil {
		return user, false, nil
	}
	if _, err := profiles.CreateProfile(ctx, user.ID, email, profile); err != nil {
		log.Printf("auth: profile creation failed for %s: %v", user.ID, err)
		return user, false, nil
	}
	return user, true, nil
}

// SignInWithProfile verifies the credentials, touches the last-login
// timestamp and loads the profile. Both side operations are best-effort: a
// failure is logged, and a missing profile leaves the user with basic auth
// info only.
func SignInWithProfile(ctx context.Context, authenticator Authenticator, profiles ProfileStore, email, password string) (*models.Session, *models.AuthUser, error) {
	session, user, err := authenticator.SignIn(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}
	if profiles == nil {
		return session, user, nil
	}

	if err := profiles.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("auth: last login update failed for %s: %v", user.ID, err)
	}

	loadProfile(ctx, profiles, user)
	return session, user, nil
}

func loadProfile(ctx context.Context, profiles ProfileStore, user *models.AuthUser) {
	if user == nil || profiles == nil {
		return
	}
	profile, err := profiles.GetProfile(ctx, user.ID)
	if err != nil {
		log.Printf("auth: profile load failed for %s: %v", user.ID, err)
		return
	}
	user.Profile = profile
}

func signupMetadata(profile models.ProfileInput) map[string]interface{} {
	data := make(map[string]interface{})
	if profile.FullName != "" {
		data["full_name"] = profile.FullName
	}
	if profile.PhoneNumber != "" {
		data["phone_number"] = profile.PhoneNumber
	}
	if len(data) == 0 {
		return nil
	}
	return data
}
