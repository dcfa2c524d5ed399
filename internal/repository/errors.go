package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a store-level uniqueness
// constraint (duplicate slug, email or section key).
var ErrConflict = errors.New("conflict")

const uniqueViolationCode = "23505"

// mapConstraintError translates a Postgres unique violation into ErrConflict
// so callers never branch on raw driver errors.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	}
	return err
}
