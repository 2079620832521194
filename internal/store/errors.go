package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user row matches the given email.
	ErrUserNotFound = errors.New("user was not found")

	// ErrMedicineNotFound is returned when a lookup or update targets a
	// medicine id that does not exist.
	ErrMedicineNotFound = errors.New("medicine was not found")

	// ErrUnknownOwner is returned when a medicine references an owner email
	// with no matching user row.
	ErrUnknownOwner = errors.New("medicine owner does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN names neither a SQLite file
	// nor a PostgreSQL URL.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)
