package handlers_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
	"github.com/mukuru1/UbuzimaHC-2/internal/supabase"
)

type fakeAuthenticator struct {
	user    *models.AuthUser
	session *models.Session

	signUpErr   error
	signInErr   error
	signOutErr  error
	resetErr    error
	passwordErr error
}

func (f *fakeAuthenticator) SignUp(_ context.Context, email, _ string, _ map[string]interface{}) (*models.AuthUser, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	user := *f.user
	user.Email = email
	return &user, nil
}

func (f *fakeAuthenticator) SignIn(_ context.Context, email, _ string) (*models.Session, *models.AuthUser, error) {
	if f.signInErr != nil {
		return nil, nil, f.signInErr
	}
	user := *f.user
	user.Email = email
	session := *f.session
	return &session, &user, nil
}

func (f *fakeAuthenticator) SignOut(_ context.Context, _ string) error {
	return f.signOutErr
}

func (f *fakeAuthenticator) CurrentUser(_ context.Context, _ string) (*models.AuthUser, error) {
	user := *f.user
	return &user, nil
}

func (f *fakeAuthenticator) Refresh(_ context.Context, _, _ string) (*models.Session, *models.AuthUser, error) {
	user := *f.user
	session := *f.session
	return &session, &user, nil
}

func (f *fakeAuthenticator) ResetPassword(_ context.Context, _ string) error {
	return f.resetErr
}

func (f *fakeAuthenticator) UpdatePassword(_ context.Context, _, _ string) error {
	return f.passwordErr
}

type fakeProfiles struct {
	profile *models.Profile

	getErr    error
	createErr error
	updateErr error
	touchErr  error

	createCalls int
	lastFields  map[string]interface{}
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ string) (*models.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	profile := *f.profile
	return &profile, nil
}

func (f *fakeProfiles) CreateProfile(_ context.Context, _, _ string, _ models.ProfileInput) (*models.Profile, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	profile := *f.profile
	return &profile, nil
}

func (f *fakeProfiles) UpdateProfile(_ context.Context, _ string, fields map[string]interface{}) (*models.Profile, error) {
	f.lastFields = fields
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if len(fields) == 0 {
		return nil, supabase.ErrEmptyUpdate
	}
	profile := *f.profile
	return &profile, nil
}

func (f *fakeProfiles) TouchLastLogin(_ context.Context, _ string) error {
	return f.touchErr
}

type fakeProber struct {
	err error
}

func (f *fakeProber) Probe(_ context.Context) error {
	return f.err
}

type fakeUploader struct {
	err  error
	path string
	url  string
}

func (f *fakeUploader) UploadProfilePhoto(_ uuid.UUID, _, _ string, _ []byte) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return f.path, f.url, nil
}
