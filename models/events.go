package models

import "time"

// TweetEventType names what happened to a tweet.
type TweetEventType string

const (
	TweetCreated TweetEventType = "tweet.created"
	TweetUpdated TweetEventType = "tweet.updated"
	TweetDeleted TweetEventType = "tweet.deleted"
)

// TweetEvent is emitted by the tweet service after every successful mutation
// and fanned out to the broker and the search index.
type TweetEvent struct {
	Type       TweetEventType `json:"type"`
	Tweet      TweetResponse  `json:"tweet"`
	OccurredAt time.Time      `json:"occurredAt"`
}
