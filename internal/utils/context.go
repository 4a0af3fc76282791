// Package utils provides general-purpose helper utilities shared by the
// forum bridge packages: typed context keys, HMAC hashing, JSON responses,
// the resty client wrapper, JWT helpers and random secrets.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authenticated local user id is
// stored.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// BrowserSessionCtxKey is the key under which the browser session id is
// stored.
var BrowserSessionCtxKey = contextKey("browserSessionID")

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetBrowserSessionIDFromContext retrieves the browser session id.
// ok is false when the value is missing, empty or not a string.
func GetBrowserSessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(BrowserSessionCtxKey).(string)
	return sid, ok && sid != ""
}
