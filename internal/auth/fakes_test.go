package auth

import (
	"context"
	"sync"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

type fakeAuthenticator struct {
	user    *models.AuthUser
	session *models.Session

	signUpErr   error
	signInErr   error
	signOutErr  error
	currentErr  error
	refreshErr  error
	resetErr    error
	passwordErr error

	signUpCalls  int
	signInCalls  int
	signOutCalls int
	currentCalls int
	refreshCalls int
	resetCalls   int

	lastSignUpData map[string]interface{}
	lastPassword   string
}

func (f *fakeAuthenticator) SignUp(_ context.Context, email, _ string, data map[string]interface{}) (*models.AuthUser, error) {
	f.signUpCalls++
	f.lastSignUpData = data
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	user := *f.user
	user.Email = email
	return &user, nil
}

func (f *fakeAuthenticator) SignIn(_ context.Context, email, _ string) (*models.Session, *models.AuthUser, error) {
	f.signInCalls++
	if f.signInErr != nil {
		return nil, nil, f.signInErr
	}
	user := *f.user
	user.Email = email
	session := *f.session
	return &session, &user, nil
}

func (f *fakeAuthenticator) SignOut(_ context.Context, _ string) error {
	f.signOutCalls++
	return f.signOutErr
}

func (f *fakeAuthenticator) CurrentUser(_ context.Context, _ string) (*models.AuthUser, error) {
	f.currentCalls++
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	user := *f.user
	return &user, nil
}

func (f *fakeAuthenticator) Refresh(_ context.Context, _, _ string) (*models.Session, *models.AuthUser, error) {
	f.refreshCalls++
	if f.refreshErr != nil {
		return nil, nil, f.refreshErr
	}
	user := *f.user
	session := *f.session
	return &session, &user, nil
}

func (f *fakeAuthenticator) ResetPassword(_ context.Context, _ string) error {
	f.resetCalls++
	return f.resetErr
}

func (f *fakeAuthenticator) UpdatePassword(_ context.Context, _, newPassword string) error {
	f.lastPassword = newPassword
	return f.passwordErr
}

type fakeProfiles struct {
	profile *models.Profile

	getErr    error
	createErr error
	updateErr error
	touchErr  error

	getCalls    int
	createCalls int
	updateCalls int
	touchCalls  int

	lastInput  models.ProfileInput
	lastFields map[string]interface{}
}

func (f *fakeProfiles) GetProfile(_ context.Context, _ string) (*models.Profile, error) {
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	profile := *f.profile
	return &profile, nil
}

func (f *fakeProfiles) CreateProfile(_ context.Context, _, _ string, input models.ProfileInput) (*models.Profile, error) {
	f.createCalls++
	f.lastInput = input
	if f.createErr != nil {
		return nil, f.createErr
	}
	profile := *f.profile
	return &profile, nil
}

func (f *fakeProfiles) UpdateProfile(_ context.Context, _ string, fields map[string]interface{}) (*models.Profile, error) {
	f.updateCalls++
	f.lastFields = fields
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	profile := *f.profile
	if name, ok := fields["full_name"].(string); ok {
		profile.FullName = name
	}
	return &profile, nil
}

func (f *fakeProfiles) TouchLastLogin(_ context.Context, _ string) error {
	f.touchCalls++
	return f.touchErr
}

type memoryTokens struct {
	mu      sync.Mutex
	access  string
	refresh string
	loadErr error
	saveErr error
}

func (t *memoryTokens) Load() (string, string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.loadErr != nil {
		return "", "", t.loadErr
	}
	return t.access, t.refresh, nil
}

func (t *memoryTokens) Save(access, refresh string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.saveErr != nil {
		return t.saveErr
	}
	t.access = access
	t.refresh = refresh
	return nil
}

func (t *memoryTokens) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.access = ""
	t.refresh = ""
	return nil
}
