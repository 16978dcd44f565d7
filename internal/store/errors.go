package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when signup hits the users_email_key
	// unique constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is returned when signup hits the
	// users_username_key unique constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoTweetWasFound is returned when a tweet lookup, update or delete
	// matches no row.
	ErrNoTweetWasFound = errors.New("no tweet was found")

	// ErrAuthorNotFound is returned when a tweet references a user that does
	// not exist (foreign key violation).
	ErrAuthorNotFound = errors.New("tweet author does not exist")

	// ErrSettingNotFound is returned by the client settings repository when
	// a key has never been stored.
	ErrSettingNotFound = errors.New("setting not found")
)

// Low-level database operation errors, wrapped together with the driver
// error: fmt.Errorf("%w: %w", ErrExecutingQuery, err).
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
