package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tweet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
}

// TweetRepository persists tweets. Every returned tweet carries its author's
// username.
type TweetRepository interface {
	CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	ListTweets(ctx context.Context) ([]models.Tweet, error)
	GetTweetsByIDs(ctx context.Context, tweetIDs []string) ([]models.Tweet, error)
	GetTweet(ctx context.Context, tweetID string) (models.Tweet, error)
	UpdateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, authorID string) error
}

// SessionStorage keeps one server-side session per issued token so that
// logout can revoke a token before it expires.
type SessionStorage interface {
	SaveSession(ctx context.Context, session models.Session) error
	IsSessionActive(ctx context.Context, tokenID, userID string) (bool, error)
	DeleteSession(ctx context.Context, tokenID string) error
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (models.RateLimitResult, error)
}
