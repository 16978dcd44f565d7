package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
)

// maxAttempts bounds how many times a statement is tried when the driver
// reports a transient error.
const maxAttempts = 3

// retryBackoff is multiplied by the attempt number between retries.
var retryBackoff = 50 * time.Millisecond

// DB wraps *sql.DB with an error classifier used to retry transient failures.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// withRetry runs op until it succeeds, returns a non-retryable error, the
// context is done or maxAttempts is reached. A DB without a classifier runs
// op exactly once.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = op()
		if err == nil || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error, trying again")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return err
}
