package tokens

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/nuroki/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the displayable subset of an access token's JWT claims.
type Claims struct {
	UserID    string
	Email     string
	Issuer    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim is before now. Tokens without
// exp are never considered expired.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Inspect decodes the claims of a JWT access token without verifying its
// signature. It is meant for display only; the backend remains the authority
// on validity.
func Inspect(token string) (Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	var c Claims

	// Firebase ID tokens carry the uid in user_id; plain JWTs use sub.
	if uid, ok := mc["user_id"].(string); ok && uid != "" {
		c.UserID = uid
	} else if sub, err := mc.GetSubject(); err == nil {
		c.UserID = sub
	}
	if email, ok := mc["email"].(string); ok {
		c.Email = email
	}
	if iss, err := mc.GetIssuer(); err == nil {
		c.Issuer = iss
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}
