package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/models"
)

var userColumns = []string{"email", "password_hash", "display_name", "created_at"}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and password updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// InsertUser persists a new user record.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) InsertUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(user.TableName()).
		Columns("email", "password_hash", "display_name").
		Values(user.Email, user.PasswordHash, user.DisplayName).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")

		switch r.db.errorClassificator.Classify(err) {
		case UniqueViolation:
			return ErrEmailAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// GetUserByEmail returns the user whose email equals email, or
// [ErrUserNotFound].
func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByEmail").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.Email, &found.PasswordHash, &found.DisplayName, &found.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.GetUserByEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdatePassword replaces the stored hash of email. It returns
// [ErrUserNotFound] when no row was changed.
func (r *userRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error updating password")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
