package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/service"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = "0190f6a4-2222-7000-8000-000000000001"
	testTokenID = "0190f6a4-4444-7000-8000-000000000001"
	testTweetID = "0190f6a4-1111-7000-8000-000000000001"
	validToken  = "valid-token"
)

// acceptingAuth accepts validToken and rejects everything else.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != validToken {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{
				RegisteredClaims: jwt.RegisteredClaims{ID: testTokenID, Subject: testUserID},
				UserID:           testUserID,
			}, nil
		},
	}
}

// newTestHandler builds a Handler with the given services; nil services are
// replaced with empty mocks.
func newTestHandler(t *testing.T, auth *mockAuthService, tweets *mockTweetService) *Handler {
	t.Helper()
	if auth == nil {
		auth = acceptingAuth()
	}
	if tweets == nil {
		tweets = &mockTweetService{}
	}

	svcs := &service.Services{
		AuthService:    auth,
		TweetService:   tweets,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
	return NewHandler(svcs, nil, config.Server{}, logger.Nop())
}

// serve runs a request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func bearer() map[string]string {
	return map[string]string{"Authorization": "Bearer " + validToken}
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) models.MessageResponse {
	t.Helper()
	var msg models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg), "body: %s", rec.Body.String())
	return msg
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
