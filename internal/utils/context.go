// Package utils provides general-purpose helpers shared by the server and
// the client: typed context keys, JSON response writing, the resty HTTP
// client, JWT generation and validation, and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's ID.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190f6a4-...")
var UserIDCtxKey = contextKey("userID")

// TokenIDCtxKey is the key under which the auth middleware stores the
// "jti" claim of the presented token. Logout uses it to drop the session.
var TokenIDCtxKey = contextKey("tokenID")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing, empty or of an unexpected type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// GetTokenIDFromContext retrieves the token identifier from the context.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDCtxKey).(string)
	return tokenID, ok && tokenID != ""
}
