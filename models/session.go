package models

import "time"

// Session is the server-side record behind an issued token. It lives for
// as long as the token does and is removed on logout.
type Session struct {
	TokenID   string    `json:"tokenId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RateLimitResult describes the state of a client's request window.
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}
