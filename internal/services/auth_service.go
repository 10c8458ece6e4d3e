package services

import (
	"context"

	"budgetdash/internal/models"
	"budgetdash/internal/validator"
)

// authService handles login, registration, and the local session.
type authService struct {
	sessions SessionManager
}

// NewAuthService creates a new AuthServicer.
func NewAuthService(sessions SessionManager) AuthServicer {
	return &authService{sessions: sessions}
}

// Login validates the credentials and opens a session.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.AuthStatus, error) {
	if err := validator.Struct(creds); err != nil {
		return nil, err
	}
	sess, err := s.sessions.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return &models.AuthStatus{Authenticated: true, Username: sess.Username}, nil
}

// Register validates and creates an account.
func (s *authService) Register(ctx context.Context, reg models.Registration) error {
	if err := validator.Struct(reg); err != nil {
		return err
	}
	return s.sessions.Register(ctx, reg)
}

// Logout clears the session.
func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Logout(ctx)
}

// Status reports whether a session is stored. It does not contact the budget service.
func (s *authService) Status(ctx context.Context) *models.AuthStatus {
	sess, err := s.sessions.Current(ctx)
	if err != nil {
		return &models.AuthStatus{}
	}
	return &models.AuthStatus{Authenticated: true, Username: sess.Username}
}

// Profile verifies the session against the budget service and returns the account.
func (s *authService) Profile(ctx context.Context) (*models.Profile, error) {
	_, profile, err := s.sessions.Restore(ctx)
	return profile, err
}
