package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/utils"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/go-resty/resty/v2"
)

type httpTweetAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewTweetAPI constructs the REST implementation of [TweetAPI].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.ServerURL is empty or cannot be parsed as a valid
// URL.
func NewTweetAPI(cfg config.ClientAdapter, logger *logger.Logger) (TweetAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	return &httpTweetAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [TweetAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpTweetAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpTweetAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [TweetAPI]. POST /api/auth/signup.
func (h *httpTweetAPI) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/signup", req)
}

// Login implements [TweetAPI]. POST /api/auth/login.
func (h *httpTweetAPI) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", req)
}

func (h *httpTweetAPI) authenticate(ctx context.Context, path string, body any) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&auth).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}
	if auth.Token == "" {
		return models.AuthResponse{}, fmt.Errorf("%s: response carries no token", path)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Logout implements [TweetAPI]. POST /api/auth/logout.
func (h *httpTweetAPI) Logout(ctx context.Context) error {
	defer h.SetToken("")

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTweets implements [TweetAPI]. GET /api/tweets.
func (h *httpTweetAPI) ListTweets(ctx context.Context) ([]models.TweetResponse, error) {
	tweets := []models.TweetResponse{}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tweets).
		Get("/api/tweets")
	if err != nil {
		return nil, fmt.Errorf("list tweets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tweets, nil
}

// SearchTweets implements [TweetAPI]. GET /api/tweets/search?q=.
func (h *httpTweetAPI) SearchTweets(ctx context.Context, query string) ([]models.TweetResponse, error) {
	tweets := []models.TweetResponse{}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetResult(&tweets).
		Get("/api/tweets/search")
	if err != nil {
		return nil, fmt.Errorf("search tweets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tweets, nil
}

// GetTweet implements [TweetAPI]. GET /api/tweets/{id}.
func (h *httpTweetAPI) GetTweet(ctx context.Context, tweetID string) (models.TweetResponse, error) {
	var tweet models.TweetResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", tweetID).
		SetResult(&tweet).
		Get("/api/tweets/{id}")
	if err != nil {
		return models.TweetResponse{}, fmt.Errorf("get tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TweetResponse{}, err
	}

	return tweet, nil
}

// CreateTweet implements [TweetAPI]. POST /api/tweets. Requires a token.
func (h *httpTweetAPI) CreateTweet(ctx context.Context, content string) (models.TweetResponse, error) {
	var tweet models.TweetResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TweetRequest{Content: content}).
		SetResult(&tweet).
		Post("/api/tweets")
	if err != nil {
		return models.TweetResponse{}, fmt.Errorf("create tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TweetResponse{}, err
	}

	return tweet, nil
}

// UpdateTweet implements [TweetAPI]. PATCH /api/tweets/{id}. Requires a token.
func (h *httpTweetAPI) UpdateTweet(ctx context.Context, tweetID, content string) (models.TweetResponse, error) {
	var tweet models.TweetResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", tweetID).
		SetBody(models.TweetRequest{Content: content}).
		SetResult(&tweet).
		Patch("/api/tweets/{id}")
	if err != nil {
		return models.TweetResponse{}, fmt.Errorf("update tweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TweetResponse{}, err
	}

	return tweet, nil
}

// DeleteTweet implements [TweetAPI]. DELETE /api/tweets/{id}. Requires a token.
func (h *httpTweetAPI) DeleteTweet(ctx context.Context, tweetID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", tweetID).
		Delete("/api/tweets/{id}")
	if err != nil {
		return fmt.Errorf("delete tweet request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [TweetAPI]. GET /api/version.
func (h *httpTweetAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpTweetAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
