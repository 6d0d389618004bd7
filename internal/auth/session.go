package auth

import (
	"context"
	"log"
	"sync"

	"github.com/mukuru1/UbuzimaHC-2/internal/models"
)

// Session change events, matching the notification names Supabase clients
// already expect.
const (
	EventInitialSession   = "INITIAL_SESSION"
	EventSignedIn         = "SIGNED_IN"
	EventSignedOut        = "SIGNED_OUT"
	EventTokenRefreshed   = "TOKEN_REFRESHED"
	EventUserUpdated      = "USER_UPDATED"
	EventPasswordRecovery = "PASSWORD_RECOVERY"
)

// Listener receives session change notifications. The session is nil when
// the change left the manager anonymous.
type Listener func(event string, session *models.Session)

// Manager tracks one logical session against Supabase: the current session
// and user, a read-through cached profile, loading/error bookkeeping, and a
// subscription for session change notifications.
//
// All state transitions are serialized under the mutex, so a restore racing
// an explicit sign-in cannot interleave partial states; listeners observe
// changes in the order they were committed. Overlapping operations are not
// otherwise coordinated: the last one to finish wins the loading and error
// fields.
type Manager struct {
	auth     Authenticator
	profiles ProfileStore
	tokens   TokenStore

	mu        sync.RWMutex
	session   *models.Session
	user      *models.AuthUser
	loading   bool
	lastErr   error
	started   bool
	listeners map[int]Listener
	nextID    int
}

type Option func(*Manager)

// WithTokenStore lets Start restore a persisted session, and keeps the
// store in sync on sign-in, refresh and sign-out.
func WithTokenStore(tokens TokenStore) Option {
	return func(m *Manager) {
		m.tokens = tokens
	}
}

func NewManager(authenticator Authenticator, profiles ProfileStore, opts ...Option) *Manager {
	m := &Manager{
		auth:      authenticator,
		profiles:  profiles,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start restores a persisted session, if any. Without a token store, or when
// restoration fails, the manager comes up anonymous; the failure is recorded
// but Start itself only errors when called twice.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return ErrAlreadyStarted
	}
	m.started = true
	m.loading = true
	m.mu.Unlock()

	session, user := m.restore(ctx)

	m.mu.Lock()
	m.session = session
	m.user = user
	m.loading = false
	m.mu.Unlock()

	m.emit(EventInitialSession, session)
	return nil
}

func (m *Manager) restore(ctx context.Context) (*models.Session, *models.AuthUser) {
	if m.tokens == nil {
		return nil, nil
	}

	access, refresh, err := m.tokens.Load()
	if err != nil {
		m.recordErr(err)
		return nil, nil
	}
	if access == "" {
		return nil, nil
	}

	user, err := m.auth.CurrentUser(ctx, access)
	if err == nil {
		loadProfile(ctx, m.profiles, user)
		return &models.Session{
			AccessToken:  access,
			TokenType:    "bearer",
			RefreshToken: refresh,
		}, user
	}

	// The access token may simply have expired; a stored refresh token can
	// still revive the session.
	if refresh != "" {
		session, user, refreshErr := m.auth.Refresh(ctx, access, refresh)
		if refreshErr == nil {
			loadProfile(ctx, m.profiles, user)
			m.saveTokens(session)
			return session, user
		}
		err = refreshErr
	}

	m.recordErr(err)
	m.clearTokens()
	return nil, nil
}

// Subscribe registers a session change listener and returns its
// unsubscribe function. Listeners are invoked outside the state lock.
func (m *Manager) Subscribe(fn Listener) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.listeners, id)
		m.mu.Unlock()
	}
}

// Close drops all listeners. In-flight operations still settle, but no
// further notifications are delivered.
func (m *Manager) Close() {
	m.mu.Lock()
	m.listeners = make(map[int]Listener)
	m.mu.Unlock()
}

// SignUp creates the credentials, then inserts the profile row. The insert
// is best-effort: auth succeeded independently, so a profile failure is
// logged and the signup still resolves.
func (m *Manager) SignUp(ctx context.Context, email, password string, profile models.ProfileInput) (*models.AuthUser, error) {
	m.begin()

	user, _, err := SignUpWithProfile(ctx, m.auth, m.profiles, email, password, profile)
	if err != nil {
		m.finish(err)
		return nil, err
	}

	m.finish(nil)
	return user, nil
}

func (m *Manager) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	m.begin()

	session, user, err := SignInWithProfile(ctx, m.auth, m.profiles, email, password)
	if err != nil {
		m.finish(err)
		return nil, err
	}

	m.mu.Lock()
	m.session = session
	m.user = user
	m.loading = false
	m.mu.Unlock()

	m.saveTokens(session)
	m.emit(EventSignedIn, session)
	return session, nil
}

// SignOut revokes the session with the backend and always clears local
// state once the call settles, whether or not revocation succeeded.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()

	m.begin()

	var err error
	if session != nil {
		err = m.auth.SignOut(ctx, session.AccessToken)
	}

	m.mu.Lock()
	m.session = nil
	m.user = nil
	m.loading = false
	m.lastErr = err
	m.mu.Unlock()

	m.clearTokens()
	m.emit(EventSignedOut, nil)
	return err
}

// UpdateProfile persists a partial update for the current user and merges
// the returned row into local state. Fails without a network call when no
// session is active.
func (m *Manager) UpdateProfile(ctx context.Context, update models.UpdateProfileRequest) (*models.Profile, error) {
	m.mu.Lock()
	if m.user == nil {
		m.lastErr = ErrNoUser
		m.mu.Unlock()
		return nil, ErrNoUser
	}
	userID := m.user.ID
	m.loading = true
	m.lastErr = nil
	m.mu.Unlock()

	profile, err := m.profiles.UpdateProfile(ctx, userID, update.Fields())
	if err != nil {
		m.finish(err)
		return nil, err
	}

	m.mu.Lock()
	if m.user != nil {
		m.user.Profile = profile
	}
	m.loading = false
	m.mu.Unlock()

	m.emit(EventUserUpdated, m.Session())
	return profile, nil
}

func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	m.begin()
	err := m.auth.ResetPassword(ctx, email)
	m.finish(err)
	if err == nil {
		m.emit(EventPasswordRecovery, m.Session())
	}
	return err
}

func (m *Manager) UpdatePassword(ctx context.Context, newPassword string) error {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()
	if session == nil {
		m.recordErr(ErrNoUser)
		return ErrNoUser
	}

	m.begin()
	err := m.auth.UpdatePassword(ctx, session.AccessToken, newPassword)
	m.finish(err)
	if err == nil {
		m.emit(EventUserUpdated, m.Session())
	}
	return err
}

// Refresh exchanges the refresh token for a new session and reloads the
// profile.
func (m *Manager) Refresh(ctx context.Context) error {
	m.mu.RLock()
	session := m.session
	m.mu.RUnlock()
	if session == nil {
		m.recordErr(ErrNoUser)
		return ErrNoUser
	}

	m.begin()

	next, user, err := m.auth.Refresh(ctx, session.AccessToken, session.RefreshToken)
	if err != nil {
		m.finish(err)
		return err
	}

	loadProfile(ctx, m.profiles, user)

	m.mu.Lock()
	m.session = next
	m.user = user
	m.loading = false
	m.mu.Unlock()

	m.saveTokens(next)
	m.emit(EventTokenRefreshed, next)
	return nil
}

func (m *Manager) Session() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

func (m *Manager) User() *models.AuthUser {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

func (m *Manager) Err() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *Manager) begin() {
	m.mu.Lock()
	m.loading = true
	m.lastErr = nil
	m.mu.Unlock()
}

func (m *Manager) finish(err error) {
	m.mu.Lock()
	m.loading = false
	if err != nil {
		m.lastErr = err
	}
	m.mu.Unlock()
}

func (m *Manager) recordErr(err error) {
	m.mu.Lock()
	m.lastErr = err
	m.mu.Unlock()
}

func (m *Manager) emit(event string, session *models.Session) {
	m.mu.RLock()
	fns := make([]Listener, 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.RUnlock()

	for _, fn := range fns {
		fn(event, session)
	}
}

func (m *Manager) saveTokens(session *models.Session) {
	if m.tokens == nil || session == nil {
		return
	}
	if err := m.tokens.Save(session.AccessToken, session.RefreshToken); err != nil {
		log.Printf("auth: failed to persist session tokens: %v", err)
	}
}

func (m *Manager) clearTokens() {
	if m.tokens == nil {
		return
	}
	if err := m.tokens.Clear(); err != nil {
		log.Printf("auth: failed to clear session tokens: %v", err)
	}
}
