package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/jackc/pgerrcode"
)

// Unique constraints declared on the users table.
const (
	usersEmailConstraint    = "users_email_key"
	usersUsernameConstraint = "users_username_key"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new account and returns it as stored, including the
// database-assigned CreatedAt.
//
// Error handling:
//   - unique_violation on users_email_key    -> [ErrEmailAlreadyExists]
//   - unique_violation on users_username_key -> [ErrUsernameAlreadyExists]
//   - any other driver-level error           -> wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	var created models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Username, user.Email, user.PasswordHash)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&created.UserID, &created.Username, &created.Email, &created.PasswordHash, &created.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case usersEmailConstraint:
				return models.User{}, ErrEmailAlreadyExists
			case usersUsernameConstraint:
				return models.User{}, ErrUsernameAlreadyExists
			}
			return models.User{}, fmt.Errorf("unexpected unique violation: %w", err)
		}

		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail looks a user up by their normalized email.
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID looks a user up by id.
// Returns [ErrNoUserWasFound] when no account matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.withRetry(ctx, func() error {
		row := r.db.QueryRowContext(ctx, query, arg)
		if err := row.Err(); err != nil {
			return err
		}
		return row.Scan(&found.UserID, &found.Username, &found.Email, &found.PasswordHash, &found.CreatedAt)
	})

	switch {
	case err == nil:
		return found, nil
	case errors.Is(err, sql.ErrNoRows),
		postgresError(err) == pgerrcode.InvalidTextRepresentation:
		return models.User{}, ErrNoUserWasFound
	default:
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
}
