package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/crypto"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/internal/store"
	"github.com/MKhiriev/go-tweet/internal/utils"
	"github.com/MKhiriev/go-tweet/internal/validators"
	"github.com/MKhiriev/go-tweet/models"
)

const MsgLoggedOut = "Logged out successfully"

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the JWT token
// lifecycle. Every issued token has a server-side session keyed by its "jti"
// claim; logout deletes the session, which revokes the token.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionStorage keeps one session per issued token.
	sessionStorage store.SessionStorage

	validator validators.Validator

	// newID generates user ids and token ids.
	newID func() string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwords hashes new passwords and verifies login attempts.
	passwords crypto.PasswordHasher

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionStorage store.SessionStorage, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		sessionStorage: sessionStorage,
		validator:      validators.NewRequestValidator(),
		newID:          utils.NewUUIDGenerator().Generate,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		passwords:      crypto.NewPasswordHasher(cfg.BcryptCost),
		logger:         logger,
	}
}

// Signup creates a new account and signs it in.
//
// The username is trimmed, the email trimmed and lower-cased before
// validation. Returns:
//   - a validation error (kind ErrValidation) with per-field details;
//   - ErrEmailTaken or ErrUsernameTaken when the account already exists.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = normalizeEmail(req.Email)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, withDetails(ErrInvalidSignupData, validators.ToDetails(err))
	}

	hash, err := a.passwords.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.AuthResponse{}, withDetails(ErrInvalidSignupData, map[string]string{
			"password": "must be at most 72 bytes long",
		})
	}
	if err != nil {
		return models.AuthResponse{}, err
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       a.newID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	})
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return models.AuthResponse{}, ErrEmailTaken
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return models.AuthResponse{}, ErrUsernameTaken
	case err != nil:
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.AuthResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.signIn(ctx, user)
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResponse{}, withDetails(ErrInvalidLoginData, validators.ToDetails(err))
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.passwords.CompareDummy(req.Password)
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.passwords.Compare(user.PasswordHash, req.Password); err != nil {
		log.Info().Err(err).Str("user_id", user.UserID).Msg("password check failed")
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	return a.signIn(ctx, user)
}

// Logout deletes the session of the presented token. It always succeeds:
// a session store failure is logged and the client drops its token anyway.
func (a *authService) Logout(ctx context.Context, tokenID string) (models.MessageResponse, error) {
	if err := a.sessionStorage.DeleteSession(ctx, tokenID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "authService.Logout").
			Msg("failed to delete session")
	}

	return models.MessageResponse{Message: MsgLoggedOut}, nil
}

// CreateToken issues a signed JWT for the given user with a fresh token id.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.newID(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT and checks that its session is still active.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid; a token whose session was deleted returns
// ErrSessionRevoked.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	active, err := a.sessionStorage.IsSessionActive(ctx, token.TokenID(), token.UserID)
	if err != nil {
		return models.Token{}, fmt.Errorf("error checking session: %w", err)
	}
	if !active {
		return models.Token{}, ErrSessionRevoked
	}

	return token, nil
}

func (a *authService) signIn(ctx context.Context, user models.User) (models.AuthResponse, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResponse{}, err
	}

	err = a.sessionStorage.SaveSession(ctx, models.Session{
		TokenID:   token.TokenID(),
		UserID:    user.UserID,
		CreatedAt: token.IssuedAt.Time,
		ExpiresAt: token.ExpiresAt.Time,
	})
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("error saving session: %w", err)
	}

	return models.AuthResponse{
		User:  user.Public(),
		Token: token.String(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
