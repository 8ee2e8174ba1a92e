package auth

import (
	"hotel-admin/domain"
	"hotel-admin/errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestValidateVerifyOTP(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.VerifyOTPRequest
		wantErr bool
		missing string
	}{
		{"Valid request", domain.VerifyOTPRequest{Email: "guest@hotel.test", OTP: "123456"}, false, ""},
		{"Missing OTP", domain.VerifyOTPRequest{Email: "guest@hotel.test"}, true, "OTP is missing"},
		{"Missing email", domain.VerifyOTPRequest{OTP: "123456"}, true, "Email is missing"},
		{"Missing both", domain.VerifyOTPRequest{}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateVerifyOTP(tt.req)
			if !tt.wantErr {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, errors.ErrMissingField)
			req.Contains(err.Error(), "Email")
			req.Contains(err.Error(), "OTP")
			req.Contains(err.Error(), tt.missing)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	req := require.New(t)

	req.NoError(ValidateLogin(domain.LoginRequest{Email: "admin@hotel.test", Password: "secret"}))
	req.ErrorIs(ValidateLogin(domain.LoginRequest{Email: "admin@hotel.test"}), errors.ErrMissingField)
	req.ErrorIs(ValidateLogin(domain.LoginRequest{Email: "not-an-email", Password: "secret"}), errors.ErrInvalidInput)
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.SignupRequest
		wantErr error
	}{
		{"Valid request", domain.SignupRequest{Email: "test@example.com", Password: "ComplexPass123!"}, nil},
		{"Invalid email", domain.SignupRequest{Email: "notanemail", Password: "ComplexPass123!"}, errors.ErrInvalidInput},
		{"Missing password", domain.SignupRequest{Email: "test@example.com"}, errors.ErrMissingField},
		{"Password too short", domain.SignupRequest{Email: "test@example.com", Password: "Sh0rt!"}, errors.ErrInvalidInput},
		{"Missing digit", domain.SignupRequest{Email: "test@example.com", Password: "NoDigitPass!"}, errors.ErrInvalidInput},
		{"Missing special char", domain.SignupRequest{Email: "test@example.com", Password: "NoSpecialChar123"}, errors.ErrInvalidInput},
		{"Password too long", domain.SignupRequest{Email: "test@example.com", Password: strings.Repeat("a", 73)}, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := ValidateSignup(tt.req)
			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.wantErr)
		})
	}
}

func TestInspectToken(t *testing.T) {
	req := require.New(t)
	issued := time.Now().Add(-time.Hour).Truncate(time.Second)
	expires := issued.Add(30 * time.Minute)
	claims := backendClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-42",
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	req.NoError(err)

	info, err := InspectToken(signed)
	req.NoError(err)
	req.Equal("admin-42", info.Subject)
	req.Equal([]string{"admin"}, info.Roles)
	req.True(info.IssuedAt.Equal(issued))
	req.True(info.ExpiresAt.Equal(expires))
	req.True(info.Expired(time.Now()))
}

func TestInspectToken_Garbage(t *testing.T) {
	req := require.New(t)
	_, err := InspectToken("not.a.jwt")
	req.ErrorIs(err, errors.ErrInvalidToken)
}
