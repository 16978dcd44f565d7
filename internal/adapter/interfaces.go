// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the terminal client uses to
// talk to the tweet API.
//
// The primary abstraction is [TweetAPI], which decouples the client services
// from HTTP. The package ships a REST implementation ([NewTweetAPI]) built on
// resty.
//
// Non-2xx responses are returned as *[Error] values whose kind is one of the
// sentinels in errors.go, so callers can use [errors.Is] without looking at
// status codes (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's message is carried verbatim in [Error.Message].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tweet/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tweet_api_mock.go -package=mock

// TweetAPI defines communication with the tweet server.
type TweetAPI interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. An empty token signs the adapter out.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if none has been set.
	Token() string

	// Signup creates an account. On success the returned token is stored via
	// SetToken.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login authenticates by email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout revokes the current token on the server. The stored token is
	// dropped even if the request fails.
	Logout(ctx context.Context) error

	ListTweets(ctx context.Context) ([]models.TweetResponse, error)
	SearchTweets(ctx context.Context, query string) ([]models.TweetResponse, error)
	GetTweet(ctx context.Context, tweetID string) (models.TweetResponse, error)
	CreateTweet(ctx context.Context, content string) (models.TweetResponse, error)
	UpdateTweet(ctx context.Context, tweetID, content string) (models.TweetResponse, error)
	DeleteTweet(ctx context.Context, tweetID string) error

	// Version returns the server's build version.
	Version(ctx context.Context) (string, error)
}
