package adapter

import "errors"

// Error kinds, one per HTTP status the API is known to return.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// FallbackMessage is shown when the server did not send a usable message.
const FallbackMessage = "Something went wrong!"

// Error is a non-2xx API response.
type Error struct {
	Kind       error
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
