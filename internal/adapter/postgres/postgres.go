// Package postgres implements the repository ports on pgx.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"trendlink/internal/core/port"
)

// uniqueViolation is the Postgres error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// translateErr maps driver errors onto port sentinels so usecases never
// import pgx.
func translateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrDuplicate
	}
	return err
}
