// Package session binds browser cookies to Golear API bearer tokens.
//
// The API signs its own tokens; the web service only reads their claims to
// learn who is signed in and when the token stops being valid.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token that cannot be decoded.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the fields the API puts in its tokens.
type Claims struct {
	Subject   string
	Name      string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the token is past exp at now. Tokens without exp
// never expire.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// DecodeToken reads the claims of raw without verifying its signature.
func DecodeToken(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, fmt.Errorf("%w: empty", ErrInvalidToken)
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	out := Claims{
		Subject: claimString(claims, "sub"),
		Name:    claimString(claims, "name"),
		Email:   claimString(claims, "email"),
		Role:    claimString(claims, "role"),
	}
	if out.Subject == "" {
		out.Subject = claimString(claims, "id")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("%w: exp: %v", ErrInvalidToken, err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time.UTC()
	}
	return out, nil
}

// claimString accepts numeric ids as well as strings.
func claimString(claims jwt.MapClaims, key string) string {
	switch value := claims[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}
