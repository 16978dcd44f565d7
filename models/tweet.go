// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TweetMaxLength is the maximum number of characters (runes) a tweet may hold
// after surrounding whitespace is trimmed.
const TweetMaxLength = 140

// Tweet is the persistence model of a short authored text record.
// Username is not stored in the tweets table; it is joined from users
// whenever a tweet is read.
type Tweet struct {
	// TweetID is the opaque unique identifier of the tweet (UUID string).
	TweetID string

	// Content is the trimmed tweet text, 1..140 characters.
	Content string

	// AuthorID references the user who created the tweet. Immutable.
	AuthorID string

	// Username is the author's username joined at read time.
	Username string

	// CreatedAt is set once, when the tweet is created.
	CreatedAt time.Time

	// UpdatedAt equals CreatedAt on creation and is refreshed on every edit.
	UpdatedAt time.Time
}

// TableName returns the name of the database table
// associated with the Tweet model.
func (t Tweet) TableName() string {
	return "tweets"
}

// IsAuthoredBy reports whether userID owns the tweet.
func (t Tweet) IsAuthoredBy(userID string) bool {
	return t.AuthorID != "" && t.AuthorID == userID
}

// TweetResponse is the wire representation of a tweet.
type TweetResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewTweetResponse maps the store representation of a tweet to its wire
// representation.
func NewTweetResponse(t Tweet) TweetResponse {
	return TweetResponse{
		ID:        t.TweetID,
		Content:   t.Content,
		AuthorID:  t.AuthorID,
		Username:  t.Username,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// NewTweetResponses maps a list of tweets preserving order.
// The result is never nil so that an empty timeline encodes as [].
func NewTweetResponses(tweets []Tweet) []TweetResponse {
	responses := make([]TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		responses = append(responses, NewTweetResponse(t))
	}
	return responses
}

// ToTweet maps the wire representation back to the domain model.
// Used by the client and the search index, which only ever see wire data.
func (r TweetResponse) ToTweet() Tweet {
	return Tweet{
		TweetID:   r.ID,
		Content:   r.Content,
		AuthorID:  r.AuthorID,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
