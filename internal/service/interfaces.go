package service

import (
	"context"

	"github.com/MKhiriev/go-tweet/models"
)

// AuthService registers users, verifies credentials and manages the
// lifecycle of bearer tokens and their server-side sessions.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	Logout(ctx context.Context, tokenID string) (models.MessageResponse, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TweetService implements tweet CRUD with ownership checks.
//
// Update and Delete check, in this order: the tweet exists, the requester is
// its author, the new content is valid.
type TweetService interface {
	Create(ctx context.Context, authorID, content string) (models.Tweet, error)
	List(ctx context.Context) ([]models.Tweet, error)
	GetByID(ctx context.Context, tweetID string) (models.Tweet, error)
	Update(ctx context.Context, tweetID, requesterID, content string) (models.Tweet, error)
	Delete(ctx context.Context, tweetID, requesterID string) (models.MessageResponse, error)
	Search(ctx context.Context, query string) ([]models.Tweet, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// TweetServiceWrapper defines middleware composition for TweetService.
// Implementations wrap an existing TweetService to add behavior such as
// emitting events.
type TweetServiceWrapper interface {
	Wrap(TweetService) TweetService // returns a decorated TweetService applying additional behavior
}
