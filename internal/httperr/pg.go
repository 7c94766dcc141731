package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation. The booking path locks rows pessimistically, but a concurrent
// insert that slips past can still trip the slot index; callers fold this
// into the same conflict code.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return false
}

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation
	}
	return false
}
