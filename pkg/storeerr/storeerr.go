// Package storeerr defines the error taxonomy shared by the repositories and
// the HTTP layer. Repositories never return a raw driver error: every store
// failure is translated into one of the kinds below, and the transport layer
// alone decides which status code each kind maps to.
package storeerr

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound means no row exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrForeignKey means a referenced row is missing, or a delete was
	// blocked by a dependent row under a RESTRICT policy.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrDuplicate means a uniqueness constraint was violated, e.g. a
	// product attached to the same order twice.
	ErrDuplicate = errors.New("duplicate key value")

	// ErrTimeout means the store did not answer within the configured
	// statement timeout.
	ErrTimeout = errors.New("statement timed out")
)

// ValidationError reports one or more invalid field values. It is produced by
// the repositories before any write is attempted, so a validation failure
// never leaves a partial row behind.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// Validation builds a single-field ValidationError.
func Validation(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PostgreSQL / CockroachDB SQLSTATE codes.
const (
	codeNotNullViolation = "23502"
	codeFKViolation      = "23503"
	codeUniqueViolation  = "23505"
	codeQueryCanceled    = "57014"
)

// Translate maps a driver- or ORM-level error to the taxonomy. Errors that
// are already part of the taxonomy pass through unchanged; anything
// unrecognised is returned as-is for the caller to surface as an internal
// failure.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrForeignKey
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeFKViolation:
			return ErrForeignKey
		case codeUniqueViolation:
			return ErrDuplicate
		case codeNotNullViolation:
			return Validation(pgErr.ColumnName, "must not be null")
		case codeQueryCanceled:
			return ErrTimeout
		}
		return err
	}

	// The sqlite driver reports constraint violations as plain text.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return ErrForeignKey
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return ErrDuplicate
	case strings.Contains(msg, "NOT NULL constraint failed"):
		// Message format: "NOT NULL constraint failed: table.column".
		col := msg[strings.LastIndex(msg, ".")+1:]
		return Validation(col, "must not be null")
	}

	return err
}
