package service

import (
	"context"

	"github.com/MKhiriev/go-tweet/models"
)

// ClientSession holds the signed-in user of the terminal client and persists
// it, together with the token and the theme, in the settings store.
type ClientSession interface {
	// Restore loads a previously saved session and hands its token to the
	// adapter. ok is false when nobody is signed in.
	Restore(ctx context.Context) (user models.PublicUser, ok bool, err error)

	// SaveAuth persists a successful signup or login.
	SaveAuth(ctx context.Context, auth models.AuthResponse) error

	// Clear forgets the token and the user. The theme is kept.
	Clear(ctx context.Context) error

	// User returns the signed-in user, if any.
	User() (models.PublicUser, bool)

	// Theme returns the stored theme, light by default.
	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme) error
}

// ClientAuthService signs the terminal client in and out.
type ClientAuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.PublicUser, error)
	Login(ctx context.Context, req models.LoginRequest) (models.PublicUser, error)

	// Logout asks the server to revoke the token and always clears the
	// local session. A server failure is logged, not returned.
	Logout(ctx context.Context) error
}

// ClientTweetService keeps the client's copy of the timeline.
//
// Created and updated tweets are upserted into the local list, which is then
// re-sorted by updatedAt descending; deleted tweets are removed. The list is
// replaced wholesale by Refresh.
type ClientTweetService interface {
	Timeline() []models.TweetResponse
	Refresh(ctx context.Context) ([]models.TweetResponse, error)
	Search(ctx context.Context, query string) ([]models.TweetResponse, error)
	Create(ctx context.Context, content string) (models.TweetResponse, error)
	Update(ctx context.Context, tweetID, content string) (models.TweetResponse, error)
	Delete(ctx context.Context, tweetID string) error
}

// ClientAppInfoService reports facts about the server the client talks to.
type ClientAppInfoService interface {
	ServerVersion(ctx context.Context) (string, error)
}
