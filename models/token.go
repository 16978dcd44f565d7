package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT together with its parsed registered claims.
//
// The "sub" claim carries the user ID and the "jti" claim identifies the
// session the token belongs to. Logging out removes that session, which
// revokes the token even though its signature is still valid.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims are the standard RFC 7519 claims (sub, exp, iat, iss, jti).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is a copy of the "sub" claim.
	UserID string `json:"-"`
}

// TokenID returns the "jti" claim, which doubles as the session key.
func (t *Token) TokenID() string {
	return t.ID
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
