package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	apperrors "budgetdash/internal/errors"
	"budgetdash/internal/logger"
	"budgetdash/internal/models"
	"budgetdash/internal/storage"
)

// Authenticator is the part of the budget service the Manager needs.
// GetProfile authenticates with the Session carried by ctx.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, reg models.Registration) error
	GetProfile(ctx context.Context) (*models.Profile, error)
}

// Manager is the only component that writes the session token. It keeps the
// current Session in memory and its sealed token in the local store.
type Manager struct {
	mu      sync.Mutex
	store   storage.Store
	auth    Authenticator
	sealer  *sealer
	now     func() time.Time
	current Session
	loaded  bool
}

// NewManager creates a Manager. secret keys the at-rest encryption of the token.
func NewManager(store storage.Store, auth Authenticator, secret string) (*Manager, error) {
	s, err := newSealer(secret)
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, auth: auth, sealer: s, now: time.Now}, nil
}

// Login exchanges credentials for a token, persists it, and loads the profile.
// The token is discarded if the profile cannot be fetched.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) (Session, error) {
	creds.Username = strings.TrimSpace(creds.Username)

	token, err := m.auth.Login(ctx, creds)
	if err != nil {
		return Session{}, err
	}
	if token == "" {
		return Session{}, apperrors.WithMessage(apperrors.ErrUpstream, "No token received")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.persist(ctx, token); err != nil {
		return Session{}, err
	}

	sess := Session{Token: token, Username: creds.Username}
	profile, err := m.auth.GetProfile(NewContext(ctx, sess))
	if err != nil {
		_ = m.clear(ctx)
		return Session{}, err
	}
	if profile.Username != "" {
		sess.Username = profile.Username
	}

	m.current, m.loaded = sess, true
	logger.Named("session").Infow("logged in", "username", sess.Username)
	return sess, nil
}

// Register creates an account. It does not log in.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)
	return m.auth.Register(ctx, reg)
}

// Current returns the active session. It fails with UNAUTHENTICATED when no
// token is stored or the stored token has expired.
func (m *Manager) Current(ctx context.Context) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		sess, err := m.load(ctx)
		if err != nil {
			return Session{}, err
		}
		m.current, m.loaded = sess, true
	}

	if !m.current.Authenticated() {
		return Session{}, apperrors.ErrUnauthenticated
	}
	if m.current.Expired(m.now()) {
		_ = m.clear(ctx)
		return Session{}, apperrors.ErrUnauthenticated
	}
	return m.current, nil
}

// Restore verifies the stored session against the budget service by fetching
// the profile. Only a rejected token is cleared; any other failure keeps it.
func (m *Manager) Restore(ctx context.Context) (Session, *models.Profile, error) {
	sess, err := m.Current(ctx)
	if err != nil {
		return Session{}, nil, err
	}

	profile, err := m.auth.GetProfile(NewContext(ctx, sess))
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			_ = m.Invalidate(ctx)
		}
		return Session{}, nil, err
	}

	m.mu.Lock()
	if m.current.Token == sess.Token && profile.Username != "" {
		m.current.Username = profile.Username
		sess = m.current
	}
	m.mu.Unlock()
	return sess, profile, nil
}

// Invalidate drops the session after the budget service rejected it.
func (m *Manager) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	logger.Named("session").Warnw("session invalidated", "username", m.current.Username)
	return m.clear(ctx)
}

// Logout drops the session at the user's request.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	logger.Named("session").Infow("logged out", "username", m.current.Username)
	return m.clear(ctx)
}

func (m *Manager) load(ctx context.Context) (Session, error) {
	sealed, ok, err := m.store.Get(ctx, models.SessionTokenKey)
	if err != nil {
		return Session{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if !ok {
		return Session{}, nil
	}

	token, err := m.sealer.open(sealed)
	if err != nil {
		logger.Named("session").Warnw("discarding stored token", "error", err)
		_ = m.store.Remove(ctx, models.SessionTokenKey)
		return Session{}, nil
	}
	return Session{Token: token}, nil
}

func (m *Manager) persist(ctx context.Context, token string) error {
	sealed, err := m.sealer.seal(token)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := m.store.Set(ctx, models.SessionTokenKey, sealed); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (m *Manager) clear(ctx context.Context) error {
	m.current, m.loaded = Session{}, true
	if err := m.store.Remove(ctx, models.SessionTokenKey); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
