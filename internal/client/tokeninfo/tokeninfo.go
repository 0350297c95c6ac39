// Package tokeninfo reads the claims of a bearer token without verifying it.
//
// The client cannot check the signature (it has no key) and must not make
// access decisions from these claims; they are only shown to the user.
package tokeninfo

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrOpaqueToken = errors.New("token is not a JWT")

// Claims mirrors the payload issued by the board API: the standard claims
// plus the username it signs in with.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username,omitempty"`
}

type Info struct {
	Subject   string
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that lies before now.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Inspect decodes token. Opaque (non-JWT) tokens yield ErrOpaqueToken.
func Inspect(token string) (Info, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrOpaqueToken, err)
	}

	info := Info{Subject: claims.Subject, Username: claims.Username}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}
