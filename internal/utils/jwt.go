package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiresAt when the token carries no "exp"
// claim.
var ErrNoExpiry = errors.New("token has no expiry")

// LooksLikeJWT reports whether token has the three dot-separated segments of
// a compact JWT. Legacy database secrets are opaque strings and fail this
// check.
func LooksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

// TokenExpiresAt returns the "exp" claim of tokenString. The signature is not
// verified: the remote side is the authority, this is only used to warn early
// about a stale token.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiry: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// IsTokenExpired reports whether tokenString expired before now.
func IsTokenExpired(tokenString string, now time.Time) (bool, error) {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return false, err
	}
	return !now.Before(exp), nil
}
