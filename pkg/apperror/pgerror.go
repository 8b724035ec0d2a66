package apperror

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes we translate into the API taxonomy.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgUndefinedTable      = "42P01"
)

// FromPgError is the single place driver errors become API errors. Repos
// return raw pgx errors; usecases run them through here before surfacing.
// Anything unrecognized becomes a generic 500 so driver detail never
// reaches the client.
func FromPgError(err error, notFoundMsg string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return NotFound(notFoundMsg)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Conflict("Duplicate entry")
		case pgForeignKeyViolation:
			return New(400, "INVALID_REFERENCE", "Invalid Reference", err)
		case pgUndefinedTable:
			return Internal(err)
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return New(504, "TIMEOUT", "Request Timeout", err)
	}

	return Internal(err)
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// for callers that need to branch (e.g. duplicate skill pairing).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
