package service

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-tweet/internal/adapter"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
)

type clientTweetService struct {
	api adapter.TweetAPI

	mu     sync.RWMutex
	tweets []models.TweetResponse

	logger *logger.Logger
}

func NewClientTweetService(api adapter.TweetAPI, logger *logger.Logger) ClientTweetService {
	return &clientTweetService{api: api, tweets: []models.TweetResponse{}, logger: logger}
}

// Timeline returns a copy of the local list.
func (s *clientTweetService) Timeline() []models.TweetResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tweets)
}

func (s *clientTweetService) Refresh(ctx context.Context) ([]models.TweetResponse, error) {
	tweets, err := s.api.ListTweets(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tweets = slices.Clone(tweets)
	sortTimeline(s.tweets)

	return slices.Clone(s.tweets), nil
}

// Search queries the server without touching the local timeline.
func (s *clientTweetService) Search(ctx context.Context, query string) ([]models.TweetResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	tweets, err := s.api.SearchTweets(ctx, query)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return tweets, nil
}

func (s *clientTweetService) Create(ctx context.Context, content string) (models.TweetResponse, error) {
	if s.api.Token() == "" {
		return models.TweetResponse{}, ErrNotSignedIn
	}

	tweet, err := s.api.CreateTweet(ctx, content)
	if err != nil {
		return models.TweetResponse{}, mapAdapterError(err)
	}

	s.upsert(tweet)
	return tweet, nil
}

func (s *clientTweetService) Update(ctx context.Context, tweetID, content string) (models.TweetResponse, error) {
	if s.api.Token() == "" {
		return models.TweetResponse{}, ErrNotSignedIn
	}

	tweet, err := s.api.UpdateTweet(ctx, tweetID, content)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrNotFound) {
			s.remove(tweetID)
		}
		return models.TweetResponse{}, err
	}

	s.upsert(tweet)
	return tweet, nil
}

// Delete removes the tweet on the server and locally. A tweet the server no
// longer knows is dropped from the local list as well.
func (s *clientTweetService) Delete(ctx context.Context, tweetID string) error {
	if s.api.Token() == "" {
		return ErrNotSignedIn
	}

	err := mapAdapterError(s.api.DeleteTweet(ctx, tweetID))
	if err == nil || errors.Is(err, ErrNotFound) {
		s.remove(tweetID)
	}
	return err
}

func (s *clientTweetService) upsert(tweet models.TweetResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.tweets, func(t models.TweetResponse) bool { return t.ID == tweet.ID })
	if i >= 0 {
		s.tweets[i] = tweet
	} else {
		s.tweets = append(s.tweets, tweet)
	}
	sortTimeline(s.tweets)
}

func (s *clientTweetService) remove(tweetID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tweets = slices.DeleteFunc(s.tweets, func(t models.TweetResponse) bool { return t.ID == tweetID })
}

// sortTimeline orders tweets the way the server lists them: most recently
// updated first, ties broken by id.
func sortTimeline(tweets []models.TweetResponse) {
	slices.SortStableFunc(tweets, func(a, b models.TweetResponse) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
