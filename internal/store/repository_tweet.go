// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/jackc/pgerrcode"
)

// tweetRepository is the PostgreSQL-backed implementation of
// [TweetRepository]. Reads and deletes are rendered with squirrel; writes
// that must return the joined username use CTE statements.
type tweetRepository struct {
	*DB
	logger *logger.Logger
}

// NewTweetRepository constructs a [TweetRepository] backed by db.
func NewTweetRepository(db *DB, logger *logger.Logger) TweetRepository {
	logger.Debug().Msg("creating tweet repository")
	return &tweetRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTweet inserts tweet with CreatedAt == UpdatedAt == tweet.CreatedAt
// and returns it joined with the author's username.
func (t *tweetRepository) CreateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	var created models.Tweet
	err := t.withRetry(ctx, func() error {
		row := t.DB.QueryRowContext(ctx, createTweet,
			tweet.TweetID,
			tweet.Content,
			tweet.AuthorID,
			normalizeTimestamp(tweet.CreatedAt),
		)
		return scanTweet(row, &created)
	})
	if err != nil {
		log.Err(err).
			Str("func", "tweetRepository.CreateTweet").
			Str("author_id", tweet.AuthorID).
			Msg("failed to insert tweet")

		if postgresError(err) == pgerrcode.ForeignKeyViolation || errors.Is(err, sql.ErrNoRows) {
			return models.Tweet{}, ErrAuthorNotFound
		}
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListTweets returns every tweet ordered by updated_at descending, then id
// descending. The result is never nil.
func (t *tweetRepository) ListTweets(ctx context.Context) ([]models.Tweet, error) {
	query, args, err := buildListTweetsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryTweets(ctx, "tweetRepository.ListTweets", query, args...)
}

// GetTweetsByIDs returns the tweets with the given ids that still exist,
// most recently updated first. Unknown ids are skipped.
func (t *tweetRepository) GetTweetsByIDs(ctx context.Context, tweetIDs []string) ([]models.Tweet, error) {
	if len(tweetIDs) == 0 {
		return []models.Tweet{}, nil
	}

	query, args, err := buildGetTweetsByIDsQuery(tweetIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return t.queryTweets(ctx, "tweetRepository.GetTweetsByIDs", query, args...)
}

// GetTweet returns a single tweet or [ErrNoTweetWasFound].
func (t *tweetRepository) GetTweet(ctx context.Context, tweetID string) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTweetQuery(tweetID)
	if err != nil {
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var tweet models.Tweet
	err = t.withRetry(ctx, func() error {
		return scanTweet(t.DB.QueryRowContext(ctx, query, args...), &tweet)
	})

	switch {
	case err == nil:
		return tweet, nil
	case isNotFound(err):
		return models.Tweet{}, ErrNoTweetWasFound
	default:
		log.Err(err).
			Str("func", "tweetRepository.GetTweet").
			Str("tweet_id", tweetID).
			Msg("failed to get tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// UpdateTweet replaces the content of the tweet identified by tweet.TweetID
// and owned by tweet.AuthorID. tweet.UpdatedAt is the caller's clock; the
// stored value is at least one microsecond after the previous one.
// Returns [ErrNoTweetWasFound] when no such tweet exists for that author.
func (t *tweetRepository) UpdateTweet(ctx context.Context, tweet models.Tweet) (models.Tweet, error) {
	log := logger.FromContext(ctx)

	var updated models.Tweet
	err := t.withRetry(ctx, func() error {
		row := t.DB.QueryRowContext(ctx, updateTweet,
			tweet.TweetID,
			tweet.AuthorID,
			tweet.Content,
			normalizeTimestamp(tweet.UpdatedAt),
		)
		return scanTweet(row, &updated)
	})

	switch {
	case err == nil:
		return updated, nil
	case isNotFound(err):
		return models.Tweet{}, ErrNoTweetWasFound
	default:
		log.Err(err).
			Str("func", "tweetRepository.UpdateTweet").
			Str("tweet_id", tweet.TweetID).
			Msg("failed to update tweet")
		return models.Tweet{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// DeleteTweet hard-deletes the tweet owned by authorID.
// Returns [ErrNoTweetWasFound] when nothing was deleted.
func (t *tweetRepository) DeleteTweet(ctx context.Context, tweetID, authorID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTweetQuery(tweetID, authorID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = t.withRetry(ctx, func() error {
		result, execErr := t.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = result.RowsAffected()
		return execErr
	})
	if err != nil {
		if isNotFound(err) {
			return ErrNoTweetWasFound
		}
		log.Err(err).
			Str("func", "tweetRepository.DeleteTweet").
			Str("tweet_id", tweetID).
			Msg("failed to delete tweet")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return ErrNoTweetWasFound
	}

	return nil
}

func (t *tweetRepository) queryTweets(ctx context.Context, funcName, query string, args ...any) ([]models.Tweet, error) {
	log := logger.FromContext(ctx)

	var tweets []models.Tweet
	err := t.withRetry(ctx, func() error {
		rows, queryErr := t.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		tweets = make([]models.Tweet, 0, 64)
		for rows.Next() {
			var tweet models.Tweet
			if scanErr := scanTweet(rows, &tweet); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			tweets = append(tweets, tweet)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query tweets")
		return nil, err
	}

	return tweets, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTweet(row rowScanner, tweet *models.Tweet) error {
	if err := row.Scan(
		&tweet.TweetID,
		&tweet.Content,
		&tweet.AuthorID,
		&tweet.Username,
		&tweet.CreatedAt,
		&tweet.UpdatedAt,
	); err != nil {
		return err
	}

	tweet.CreatedAt = tweet.CreatedAt.UTC()
	tweet.UpdatedAt = tweet.UpdatedAt.UTC()
	return nil
}

// isNotFound treats an empty result and a malformed uuid the same way:
// neither can match an existing tweet.
func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows) ||
		postgresError(err) == pgerrcode.InvalidTextRepresentation
}
