package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"hotel-admin/auth"
	"hotel-admin/contract"
	"hotel-admin/domain"
	"hotel-admin/errors"
	"hotel-admin/repositories"
	"log/slog"
	"strings"
	"time"
)

type IAuthService interface {
	Login(ctx context.Context, email, password string) (Token, error)
	Signup(ctx context.Context, name, email, password string) (Token, error)
	Restore(email string) (repositories.Session, error)
	Logout(email string) error
}

type AuthService struct {
	log       *slog.Logger
	transport contract.IAuthTransport
	sessions  repositories.ISessionRepository
	now       func() time.Time
}

type Token string

func (t Token) String() string {
	return string(t)
}

func NewAuthService(log *slog.Logger, transport contract.IAuthTransport,
	sessions repositories.ISessionRepository) *AuthService {
	return &AuthService{log: log, transport: transport, sessions: sessions, now: time.Now}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Token, error) {
	req := domain.LoginRequest{Email: strings.TrimSpace(email), Password: password}

	// 1. Reject obviously incomplete credentials before any network call
	if err := auth.ValidateLogin(req); err != nil {
		return "", err
	}

	// 2. Ask the backend for a session token
	result, err := s.transport.Login(ctx, req)
	if err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("%w: backend returned no token", errors.ErrInvalidToken)
	}

	// 3. Keep it for the next invocations
	if err := s.remember(req.Email, result.Token); err != nil {
		return "", err
	}
	return Token(result.Token), nil
}

// Signup creates an admin account. Backends that confirm accounts by OTP answer
// without a token, in which case nothing is stored and an empty token is returned.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (Token, error) {
	req := domain.SignupRequest{Name: strings.TrimSpace(name), Email: strings.TrimSpace(email), Password: password}
	if err := auth.ValidateSignup(req); err != nil {
		return "", err
	}

	result, err := s.transport.Signup(ctx, req)
	if err != nil {
		return "", err
	}
	if result.Token == "" {
		s.log.Info("Signup accepted, waiting for verification", "email", req.Email, "message", result.Message)
		return "", nil
	}

	if err := s.remember(req.Email, result.Token); err != nil {
		return "", err
	}
	return Token(result.Token), nil
}

// Restore loads the stored session of email and authenticates the transport with it.
// An expired token is dropped.
func (s *AuthService) Restore(email string) (repositories.Session, error) {
	session, err := s.sessions.Get(email)
	if err != nil {
		return repositories.Session{}, err
	}

	info, err := auth.InspectToken(session.Token)
	switch {
	case err != nil:
		s.log.Debug("Stored token is not a JWT, using it as is", "email", email)
	case info.Expired(s.now()):
		if err := s.sessions.Delete(email); err != nil {
			s.log.Warn("Could not drop expired session", "email", email, "error", err)
		}
		return repositories.Session{}, fmt.Errorf("%w: %s", errors.ErrSessionExpired, email)
	}

	s.transport.SetToken(session.Token)
	return session, nil
}

func (s *AuthService) Logout(email string) error {
	if _, err := s.sessions.Get(email); err != nil {
		if stderrors.Is(err, errors.ErrSessionNotFound) {
			return nil
		}
		return err
	}
	s.transport.SetToken("")
	return s.sessions.Delete(email)
}

func (s *AuthService) remember(email, token string) error {
	if err := s.sessions.Save(repositories.NewSession(email, token)); err != nil {
		return fmt.Errorf("storing session failed: %w", err)
	}
	s.transport.SetToken(token)
	s.log.Debug("Session stored", "email", email)
	return nil
}
