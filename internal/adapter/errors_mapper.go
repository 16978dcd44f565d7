package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tweet/models"
	"github.com/go-resty/resty/v2"
)

var statusKinds = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

// mapHTTPError returns nil for 2xx responses and an *Error otherwise. The
// message comes from the JSON error body when there is one.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusKinds[code]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	apiErr := &Error{Kind: kind, StatusCode: code, Message: FallbackMessage}

	var body models.MessageResponse
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if msg := strings.TrimSpace(body.Message); msg != "" {
			apiErr.Message = msg
		}
		apiErr.Details = body.Details
	}

	return apiErr
}
