package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/migrations"
	"github.com/MKhiriev/go-med-reminder/models"
)

func newTestUserRepo(t *testing.T, dialect string) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newDB(db, dialect, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteError(ext sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: ext}
}

func TestInsertUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	user := models.User{Email: "ann@example.com", PasswordHash: "hash", DisplayName: "User"}

	mock.ExpectExec("INSERT INTO users").
		WithArgs(user.Email, user.PasswordHash, user.DisplayName).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.InsertUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertUser_UniqueViolation(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		err     error
	}{
		{name: "sqlite primary key", dialect: migrations.DialectSQLite, err: sqliteError(sqlite3.ErrConstraintPrimaryKey)},
		{name: "sqlite unique", dialect: migrations.DialectSQLite, err: sqliteError(sqlite3.ErrConstraintUnique)},
		{name: "postgres", dialect: migrations.DialectPostgres, err: pgError(pgerrcode.UniqueViolation)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t, tt.dialect)
			defer db.Close()

			mock.ExpectExec("INSERT INTO users").
				WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
				WillReturnError(tt.err)

			err := repo.InsertUser(context.Background(), models.User{Email: "ann@example.com"})
			if !errors.Is(err, ErrEmailAlreadyExists) {
				t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
			}
		})
	}
}

func TestInsertUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	mock.ExpectExec("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.InsertUser(context.Background(), models.User{Email: "ann@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestInsertUser_PostgresPlaceholders(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectPostgres)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO users \(email,password_hash,display_name\) VALUES \(\$1,\$2,\$3\)`).
		WithArgs("ann@example.com", "hash", "Ann").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertUser(context.Background(), models.User{Email: "ann@example.com", PasswordHash: "hash", DisplayName: "Ann"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.
		NewRows([]string{"email", "password_hash", "display_name", "created_at"}).
		AddRow("ann@example.com", "hash", "User", now)

	mock.ExpectQuery("SELECT email, password_hash, display_name, created_at FROM users WHERE").
		WithArgs("ann@example.com").
		WillReturnRows(rows)

	found, err := repo.GetUserByEmail(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "ann@example.com" || found.PasswordHash != "hash" || found.DisplayName != "User" {
		t.Errorf("unexpected user: %+v", found)
	}
	if !found.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, found.CreatedAt)
	}
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	mock.ExpectQuery("SELECT email").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"email", "password_hash", "display_name", "created_at"}))

	_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUserByEmail_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"email"}). // intentionally wrong shape → scan error
		AddRow("ann@example.com")

	mock.ExpectQuery("SELECT email").WillReturnRows(rows)

	_, err := repo.GetUserByEmail(context.Background(), "ann@example.com")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	tests := []struct {
		name    string
		result  driver.Result
		execErr error
		wantErr error
	}{
		{name: "updated", result: sqlmock.NewResult(0, 1)},
		{name: "no such user", result: sqlmock.NewResult(0, 0), wantErr: ErrUserNotFound},
		{name: "exec failure", execErr: errors.New("locked"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t, migrations.DialectSQLite)
			defer db.Close()

			exp := mock.ExpectExec("UPDATE users SET password_hash").WithArgs("new-hash", "ann@example.com")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.UpdatePassword(context.Background(), "ann@example.com", "new-hash")
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
