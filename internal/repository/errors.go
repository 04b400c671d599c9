// Package repository provides data access layer implementations for the layaway service.
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/benx421/layaway/internal/models"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation = "23505"
	pqCheckViolation  = "23514"
)

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// translate maps driver errors onto the models sentinel errors so services
// never need to import the driver.
func translate(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Constraint, models.ErrDuplicate)
		case pqCheckViolation:
			return fmt.Errorf("%s: %s: %w", op, pqErr.Constraint, models.ErrCheckViolation)
		}
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}

func expectOneRow(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}
