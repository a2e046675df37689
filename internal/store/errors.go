package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/quotely/quotely-api/internal/domain"
)

// isUniqueViolation sniffs driver error text for a unique constraint
// failure. Works for sqlite ("UNIQUE constraint failed") and postgres
// ("duplicate key value", SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()

	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "23505")
}

// conflictOr maps a unique violation to a domain conflict; any other
// error passes through for the handler boundary to treat as a store
// failure.
func conflictOr(err error, entity, reason string) error {
	if isUniqueViolation(err) {
		return domain.NewConflictError(entity, reason)
	}

	return err
}

// notFoundOr maps sql.ErrNoRows to a domain not-found; any other error
// passes through.
func notFoundOr(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError(entity, id)
	}

	return err
}
