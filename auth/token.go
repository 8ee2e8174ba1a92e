package auth

import (
	"fmt"
	"hotel-admin/errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the admin tooling shows about a backend token.
type TokenInfo struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

type backendClaims struct {
	Role   string   `json:"role,omitempty"`
	Roles  []string `json:"roles,omitempty"`
	UserID string   `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// InspectToken decodes a backend JWT without checking its signature.
// The signing key lives on the backend; this is for local debugging only.
func InspectToken(token string) (TokenInfo, error) {
	var claims backendClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %v", errors.ErrInvalidToken, err)
	}

	info := TokenInfo{Subject: claims.Subject, Roles: claims.Roles}
	if info.Subject == "" {
		info.Subject = claims.UserID
	}
	if claims.Role != "" {
		info.Roles = append(info.Roles, claims.Role)
	}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
