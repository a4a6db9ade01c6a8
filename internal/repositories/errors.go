package repositories

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("requested record not found")

	// ErrDatabaseError wraps unexpected storage-layer failures. Callers must
	// never surface these as validation problems.
	ErrDatabaseError = errors.New("storage error")

	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")
)

// scanner is satisfied by *sql.Row and *sql.Rows, so scan helpers can serve
// both single-row and multi-row queries.
type scanner interface {
	Scan(dest ...interface{}) error
}
