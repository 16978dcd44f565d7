package service

import "errors"

// Error kinds. Every error returned to the transport layer either wraps one
// of these or is treated as internal.
var (
	ErrValidation        = errors.New("validation error")
	ErrAuth              = errors.New("authentication error")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrSearchUnavailable = errors.New("search unavailable")
)

// Error is a business error: a kind plus the message shown to the user.
// errors.Is matches both the concrete value and its kind.
type Error struct {
	Kind    error
	Message string
	Details map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Is reports whether target is an *Error with the same kind and message, so
// a copy carrying details still matches its base value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func withDetails(base *Error, details map[string]string) *Error {
	return &Error{Kind: base.Kind, Message: base.Message, Details: details}
}

// NewValidationError builds a validation error carrying per-field details.
func NewValidationError(message string, details map[string]string) *Error {
	return &Error{Kind: ErrValidation, Message: message, Details: details}
}

var (
	ErrInvalidSignupData  = newError(ErrValidation, "Invalid signup data")
	ErrInvalidLoginData   = newError(ErrValidation, "Invalid login data")
	ErrInvalidTweet       = newError(ErrValidation, "Tweet must be between 1 and 140 characters")
	ErrEmptySearchQuery   = newError(ErrValidation, "Search query is required")
	ErrInvalidSearchQuery = newError(ErrValidation, "Search query must be at most 140 characters")

	ErrInvalidCredentials      = newError(ErrAuth, "invalid credentials")
	ErrTokenIsExpiredOrInvalid = newError(ErrAuth, "token is expired or invalid")
	ErrSessionRevoked          = newError(ErrAuth, "session has been revoked")
	ErrNoToken                 = newError(ErrAuth, "authorization token is required")

	ErrNotAuthorizedToUpdate = newError(ErrForbidden, "Not authorized to update this tweet")
	ErrNotAuthorizedToDelete = newError(ErrForbidden, "Not authorized to delete this tweet")

	ErrTweetNotFound = newError(ErrNotFound, "Tweet not found")

	ErrEmailTaken    = newError(ErrConflict, "email already exists")
	ErrUsernameTaken = newError(ErrConflict, "username already exists")

	ErrSearchNotAvailable = newError(ErrSearchUnavailable, "Search is not available")
)

var (
	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNotSignedIn = errors.New("not signed in")
)

// Message returns the user-facing message and details of err. ok is false
// for errors outside the taxonomy.
func Message(err error) (message string, details map[string]string, ok bool) {
	var serviceErr *Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Message, serviceErr.Details, true
	}
	return "", nil, false
}
