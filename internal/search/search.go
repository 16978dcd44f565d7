// Package search keeps an Elasticsearch index of tweets and answers
// full-text queries against it.
//
// The index is fed from tweet events (see [ElasticIndex.Handle]) and only
// stores what is needed for matching. Hits are returned as tweet ids; the
// caller loads the current tweets from the relational store.
package search

import (
	"context"
	"errors"
)

//go:generate mockgen -source=search.go -destination=../mock/search_mock.go -package=mock

// DefaultLimit caps the number of hits returned by a query.
const DefaultLimit = 50

var (
	ErrIndexRequestFailed  = errors.New("search index request failed")
	ErrSearchRequestFailed = errors.New("search request failed")
)

// TweetIndex answers full-text queries with matching tweet ids, best match
// first.
type TweetIndex interface {
	Search(ctx context.Context, query string, limit int) ([]string, error)
}
