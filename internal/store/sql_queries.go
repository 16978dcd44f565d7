package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (id, username, email, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, username, email, password_hash, created_at
    FROM users
    WHERE id = $1;`

	// createTweet inserts a tweet and returns it joined with its author.
	createTweet = `WITH inserted AS (
        INSERT INTO tweets (id, content, author_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $4)
        RETURNING id, content, author_id, created_at, updated_at
    )
    SELECT i.id, i.content, i.author_id, u.username, i.created_at, i.updated_at
    FROM inserted i
    JOIN users u ON u.id = i.author_id;`

	// updateTweet replaces the content of an author's tweet. updated_at never
	// moves backwards and always grows by at least one microsecond.
	updateTweet = `WITH updated AS (
        UPDATE tweets
        SET content = $3,
            updated_at = GREATEST($4::timestamptz, updated_at + INTERVAL '1 microsecond')
        WHERE id = $1 AND author_id = $2
        RETURNING id, content, author_id, created_at, updated_at
    )
    SELECT t.id, t.content, t.author_id, u.username, t.created_at, t.updated_at
    FROM updated t
    JOIN users u ON u.id = t.author_id;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var tweetColumns = []string{
	"t.id",
	"t.content",
	"t.author_id",
	"u.username",
	"t.created_at",
	"t.updated_at",
}

func selectTweets() sq.SelectBuilder {
	return psql.Select(tweetColumns...).
		From("tweets t").
		Join("users u ON u.id = t.author_id")
}

// buildListTweetsQuery renders the timeline query: every tweet, most
// recently updated first, ties broken by id.
func buildListTweetsQuery() (string, []any, error) {
	return selectTweets().
		OrderBy("t.updated_at DESC", "t.id DESC").
		ToSql()
}

func buildGetTweetQuery(tweetID string) (string, []any, error) {
	return selectTweets().
		Where(sq.Eq{"t.id": tweetID}).
		ToSql()
}

// buildGetTweetsByIDsQuery loads the tweets whose ids are given, newest first.
// Used to hydrate search hits with current data.
func buildGetTweetsByIDsQuery(tweetIDs []string) (string, []any, error) {
	return selectTweets().
		Where(sq.Eq{"t.id": tweetIDs}).
		OrderBy("t.updated_at DESC", "t.id DESC").
		ToSql()
}

func buildDeleteTweetQuery(tweetID, authorID string) (string, []any, error) {
	return psql.Delete("tweets").
		Where(sq.Eq{"id": tweetID, "author_id": authorID}).
		ToSql()
}

// normalizeTimestamp drops precision PostgreSQL cannot store and pins the
// location to UTC.
func normalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
