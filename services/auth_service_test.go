package services

import (
	"context"
	"hotel-admin/domain"
	"hotel-admin/errors"
	"hotel-admin/mocks"
	"hotel-admin/repositories"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthService(t *testing.T) (*AuthService, *mocks.MockIAuthTransport, *mocks.MockISessionRepository) {
	ctrl := gomock.NewController(t)
	transport := mocks.NewMockIAuthTransport(ctrl)
	sessions := mocks.NewMockISessionRepository(ctrl)
	return NewAuthService(logs.GetLoggerFromLevel(slog.LevelDebug), transport, sessions), transport, sessions
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestAuthService_Login(t *testing.T) {
	t.Run("should login and store the session", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)

		transport.EXPECT().
			Login(gomock.Any(), domain.LoginRequest{Email: "admin@hotel.test", Password: "Secret123!"}).
			Return(domain.AuthResult{Token: "jwt-token"}, nil).
			Times(1)
		sessions.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(s repositories.Session) error {
				req.Equal("admin@hotel.test", s.Email)
				req.Equal("jwt-token", s.Token)
				return nil
			}).
			Times(1)
		transport.EXPECT().SetToken("jwt-token").Times(1)

		token, err := svc.Login(context.Background(), " admin@hotel.test ", "Secret123!")

		req.NoError(err)
		req.Equal(Token("jwt-token"), token)
	})

	t.Run("should not call the backend when the password is missing", func(t *testing.T) {
		req := require.New(t)
		svc, transport, _ := newAuthService(t)

		transport.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Login(context.Background(), "admin@hotel.test", "")

		req.ErrorIs(err, errors.ErrMissingField)
	})

	t.Run("should fail when the backend returns no token", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)

		transport.EXPECT().Login(gomock.Any(), gomock.Any()).Return(domain.AuthResult{Message: "ok"}, nil)
		sessions.EXPECT().Save(gomock.Any()).Times(0)

		_, err := svc.Login(context.Background(), "admin@hotel.test", "Secret123!")

		req.ErrorIs(err, errors.ErrInvalidToken)
	})

	t.Run("should propagate backend rejections", func(t *testing.T) {
		req := require.New(t)
		svc, transport, _ := newAuthService(t)

		transport.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(domain.AuthResult{}, &errors.APIError{Status: 401, Message: "Invalid credentials"})

		_, err := svc.Login(context.Background(), "admin@hotel.test", "wrong")

		req.ErrorIs(err, errors.ErrUnexpectedStatus)
		req.Equal("Invalid credentials", errors.Message(err))
	})
}

func TestAuthService_Signup(t *testing.T) {
	t.Run("should accept a signup waiting for verification", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)

		transport.EXPECT().
			Signup(gomock.Any(), domain.SignupRequest{Name: "Front Desk", Email: "desk@hotel.test", Password: "ComplexPass123!"}).
			Return(domain.AuthResult{Message: "OTP sent"}, nil).
			Times(1)
		sessions.EXPECT().Save(gomock.Any()).Times(0)

		token, err := svc.Signup(context.Background(), "Front Desk", "desk@hotel.test", "ComplexPass123!")

		req.NoError(err)
		req.Empty(token)
	})

	t.Run("should store the session when a token is returned", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)

		transport.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(domain.AuthResult{Token: "t"}, nil)
		sessions.EXPECT().Save(gomock.Any()).Return(nil).Times(1)
		transport.EXPECT().SetToken("t").Times(1)

		token, err := svc.Signup(context.Background(), "", "desk@hotel.test", "ComplexPass123!")

		req.NoError(err)
		req.Equal(Token("t"), token)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		svc, transport, _ := newAuthService(t)

		transport.EXPECT().Signup(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Signup(context.Background(), "", "desk@hotel.test", "simplepassword")

		req.ErrorIs(err, errors.ErrInvalidInput)
	})
}

func TestAuthService_Restore(t *testing.T) {
	t.Run("should authenticate the transport with a valid session", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)
		token := signedToken(t, time.Now().Add(time.Hour))
		stored := repositories.NewSession("admin@hotel.test", token)

		sessions.EXPECT().Get("admin@hotel.test").Return(stored, nil)
		transport.EXPECT().SetToken(token).Times(1)

		session, err := svc.Restore("admin@hotel.test")

		req.NoError(err)
		req.Equal(stored, session)
	})

	t.Run("should drop an expired session", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)
		token := signedToken(t, time.Now().Add(-time.Minute))

		sessions.EXPECT().Get("admin@hotel.test").Return(repositories.NewSession("admin@hotel.test", token), nil)
		sessions.EXPECT().Delete("admin@hotel.test").Return(nil).Times(1)
		transport.EXPECT().SetToken(gomock.Any()).Times(0)

		_, err := svc.Restore("admin@hotel.test")

		req.ErrorIs(err, errors.ErrSessionExpired)
	})

	t.Run("should keep opaque tokens", func(t *testing.T) {
		req := require.New(t)
		svc, transport, sessions := newAuthService(t)

		sessions.EXPECT().Get("admin@hotel.test").Return(repositories.NewSession("admin@hotel.test", "opaque"), nil)
		transport.EXPECT().SetToken("opaque").Times(1)

		_, err := svc.Restore("admin@hotel.test")

		req.NoError(err)
	})

	t.Run("should report a missing session", func(t *testing.T) {
		req := require.New(t)
		svc, _, sessions := newAuthService(t)

		sessions.EXPECT().Get("nobody@hotel.test").Return(repositories.Session{}, errors.ErrSessionNotFound)

		_, err := svc.Restore("nobody@hotel.test")

		req.ErrorIs(err, errors.ErrSessionNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	req := require.New(t)
	svc, transport, sessions := newAuthService(t)

	sessions.EXPECT().Get("admin@hotel.test").Return(repositories.NewSession("admin@hotel.test", "t"), nil)
	sessions.EXPECT().Delete("admin@hotel.test").Return(nil).Times(1)
	transport.EXPECT().SetToken("").Times(1)
	req.NoError(svc.Logout("admin@hotel.test"))

	sessions.EXPECT().Get("nobody@hotel.test").Return(repositories.Session{}, errors.ErrSessionNotFound)
	req.NoError(svc.Logout("nobody@hotel.test"))
}
