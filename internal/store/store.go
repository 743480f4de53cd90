// Package store defines the error taxonomy and query shapes shared by
// every record collection repository.
package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound no record matched the query.
	ErrNotFound = errors.New("record not found")
	// ErrAmbiguous uniqueness was assumed but more than one record matched.
	ErrAmbiguous = errors.New("ambiguous match")
	// ErrConflict an optimistic update precondition did not hold.
	ErrConflict = errors.New("update conflict")
	// ErrValidation the store rejected the record, e.g. a uniqueness violation.
	ErrValidation = errors.New("validation failed")
)

// ReadError wraps a transport-level failure of a read operation.
func ReadError(err error) error {
	return fmt.Errorf("store read: %w", err)
}

// WriteError wraps a transport-level failure of a write operation.
func WriteError(err error) error {
	return fmt.Errorf("store write: %w", err)
}

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. Creation paths map it to ErrValidation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type ListParams struct {
	Filter map[string]any
	SortBy string
	Desc   bool
	Limit  int
	Offset int
}
