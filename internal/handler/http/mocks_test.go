package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tweet/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	logoutFn      func(ctx context.Context, tokenID string) (models.MessageResponse, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, tokenID string) (models.MessageResponse, error) {
	return m.logoutFn(ctx, tokenID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockTweetService implements service.TweetService for unit tests.
type mockTweetService struct {
	createFn  func(ctx context.Context, authorID, content string) (models.Tweet, error)
	listFn    func(ctx context.Context) ([]models.Tweet, error)
	getByIDFn func(ctx context.Context, tweetID string) (models.Tweet, error)
	updateFn  func(ctx context.Context, tweetID, requesterID, content string) (models.Tweet, error)
	deleteFn  func(ctx context.Context, tweetID, requesterID string) (models.MessageResponse, error)
	searchFn  func(ctx context.Context, query string) ([]models.Tweet, error)
}

func (m *mockTweetService) Create(ctx context.Context, authorID, content string) (models.Tweet, error) {
	return m.createFn(ctx, authorID, content)
}

func (m *mockTweetService) List(ctx context.Context) ([]models.Tweet, error) {
	return m.listFn(ctx)
}

func (m *mockTweetService) GetByID(ctx context.Context, tweetID string) (models.Tweet, error) {
	return m.getByIDFn(ctx, tweetID)
}

func (m *mockTweetService) Update(ctx context.Context, tweetID, requesterID, content string) (models.Tweet, error) {
	return m.updateFn(ctx, tweetID, requesterID, content)
}

func (m *mockTweetService) Delete(ctx context.Context, tweetID, requesterID string) (models.MessageResponse, error) {
	return m.deleteFn(ctx, tweetID, requesterID)
}

func (m *mockTweetService) Search(ctx context.Context, query string) ([]models.Tweet, error) {
	return m.searchFn(ctx, query)
}

// mockAppInfoService implements service.AppInfoService.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// mockRateLimiter implements store.RateLimiter.
type mockRateLimiter struct {
	allowFn func(ctx context.Context, key string, limit int, window time.Duration) (models.RateLimitResult, error)
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (models.RateLimitResult, error) {
	return m.allowFn(ctx, key, limit, window)
}
