// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/search"
	"github.com/MKhiriev/go-tweet/internal/store"
	"github.com/MKhiriev/go-tweet/internal/utils"
	"github.com/MKhiriev/go-tweet/internal/validators"
	"github.com/MKhiriev/go-tweet/models"
)

const MsgTweetDeleted = "Tweet deleted successfully"

type tweetService struct {
	tweetRepository store.TweetRepository

	// index is nil when search is not configured.
	index search.TweetIndex

	validator validators.Validator
	newID     func() string
	now       func() time.Time

	logger *logger.Logger
}

// NewTweetService constructs the TweetService. index may be nil, in which
// case Search returns ErrSearchNotAvailable.
func NewTweetService(tweetRepository store.TweetRepository, index search.TweetIndex, logger *logger.Logger) TweetService {
	return &tweetService{
		tweetRepository: tweetRepository,
		index:           index,
		validator:       validators.NewRequestValidator(),
		newID:           utils.NewUUIDGenerator().Generate,
		now:             time.Now,
		logger:          logger,
	}
}

// Create stores a new tweet authored by authorID. content is trimmed and
// must then hold 1 to 140 characters.
func (s *tweetService) Create(ctx context.Context, authorID, content string) (models.Tweet, error) {
	content, err := s.validateContent(ctx, content)
	if err != nil {
		return models.Tweet{}, err
	}

	tweet, err := s.tweetRepository.CreateTweet(ctx, models.Tweet{
		TweetID:   s.newID(),
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: s.now(),
	})
	if errors.Is(err, store.ErrAuthorNotFound) {
		// the token outlived its user
		return models.Tweet{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.Tweet{}, fmt.Errorf("error creating tweet: %w", err)
	}

	return tweet, nil
}

// List returns every tweet, most recently updated first.
func (s *tweetService) List(ctx context.Context) ([]models.Tweet, error) {
	tweets, err := s.tweetRepository.ListTweets(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tweets: %w", err)
	}
	if tweets == nil {
		tweets = []models.Tweet{}
	}

	return tweets, nil
}

// GetByID returns ErrTweetNotFound for unknown and malformed ids alike.
func (s *tweetService) GetByID(ctx context.Context, tweetID string) (models.Tweet, error) {
	if !utils.IsValidUUID(tweetID) {
		return models.Tweet{}, ErrTweetNotFound
	}

	tweet, err := s.tweetRepository.GetTweet(ctx, tweetID)
	if errors.Is(err, store.ErrNoTweetWasFound) {
		return models.Tweet{}, ErrTweetNotFound
	}
	if err != nil {
		return models.Tweet{}, fmt.Errorf("error getting tweet: %w", err)
	}

	return tweet, nil
}

// Update replaces the content of a tweet owned by requesterID.
func (s *tweetService) Update(ctx context.Context, tweetID, requesterID, content string) (models.Tweet, error) {
	// NotFound and Forbidden win over invalid content: a non-author always gets Forbidden.
	existing, err := s.GetByID(ctx, tweetID)
	if err != nil {
		return models.Tweet{}, err
	}
	if !existing.IsAuthoredBy(requesterID) {
		logger.FromContext(ctx).Info().
			Str("tweet_id", tweetID).
			Str("requester_id", requesterID).
			Msg("update of another user's tweet rejected")
		return models.Tweet{}, ErrNotAuthorizedToUpdate
	}

	content, err = s.validateContent(ctx, content)
	if err != nil {
		return models.Tweet{}, err
	}

	updated, err := s.tweetRepository.UpdateTweet(ctx, models.Tweet{
		TweetID:   tweetID,
		AuthorID:  requesterID,
		Content:   content,
		UpdatedAt: s.now(),
	})
	if errors.Is(err, store.ErrNoTweetWasFound) {
		// deleted between the read and the write
		return models.Tweet{}, ErrTweetNotFound
	}
	if err != nil {
		return models.Tweet{}, fmt.Errorf("error updating tweet: %w", err)
	}

	return updated, nil
}

// Delete removes a tweet owned by requesterID.
func (s *tweetService) Delete(ctx context.Context, tweetID, requesterID string) (models.MessageResponse, error) {
	existing, err := s.GetByID(ctx, tweetID)
	if err != nil {
		return models.MessageResponse{}, err
	}
	if !existing.IsAuthoredBy(requesterID) {
		logger.FromContext(ctx).Info().
			Str("tweet_id", tweetID).
			Str("requester_id", requesterID).
			Msg("deletion of another user's tweet rejected")
		return models.MessageResponse{}, ErrNotAuthorizedToDelete
	}

	err = s.tweetRepository.DeleteTweet(ctx, tweetID, requesterID)
	if errors.Is(err, store.ErrNoTweetWasFound) {
		return models.MessageResponse{}, ErrTweetNotFound
	}
	if err != nil {
		return models.MessageResponse{}, fmt.Errorf("error deleting tweet: %w", err)
	}

	return models.MessageResponse{Message: MsgTweetDeleted}, nil
}

// Search returns tweets matching query in relevance order. Hits whose tweet
// no longer exists are skipped.
func (s *tweetService) Search(ctx context.Context, query string) ([]models.Tweet, error) {
	req := models.SearchRequest{Query: strings.TrimSpace(query)}
	if req.Query == "" {
		return nil, ErrEmptySearchQuery
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, withDetails(ErrInvalidSearchQuery, validators.ToDetails(err))
	}

	if s.index == nil {
		return nil, ErrSearchNotAvailable
	}

	ids, err := s.index.Search(ctx, req.Query, search.DefaultLimit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "tweetService.Search").Msg("search index failed")
		return nil, fmt.Errorf("%w: %w", ErrSearchNotAvailable, err)
	}

	found, err := s.tweetRepository.GetTweetsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("error loading search hits: %w", err)
	}

	byID := make(map[string]models.Tweet, len(found))
	for _, tweet := range found {
		byID[tweet.TweetID] = tweet
	}

	tweets := make([]models.Tweet, 0, len(found))
	for _, id := range ids {
		if tweet, ok := byID[id]; ok {
			tweets = append(tweets, tweet)
		}
	}

	return tweets, nil
}

func (s *tweetService) validateContent(ctx context.Context, content string) (string, error) {
	content = strings.TrimSpace(content)
	if err := s.validator.Validate(ctx, models.TweetRequest{Content: content}); err != nil {
		return "", withDetails(ErrInvalidTweet, validators.ToDetails(err))
	}
	return content, nil
}
