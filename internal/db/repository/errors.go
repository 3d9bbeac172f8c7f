package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint is returned when Postgres rejects a write on an
	// integrity constraint (foreign key, not null, check).
	ErrConstraint = errors.New("constraint violation")
)

// integrity_constraint_violation class.
const pgIntegrityClass = "23"

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgIntegrityClass {
		return errors.Join(ErrConstraint, err)
	}
	return err
}
