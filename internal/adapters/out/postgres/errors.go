package postgres

import (
	"context"
	"errors"

	"supplytrace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes that signal a retryable or conflicting write.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgUniqueViolation      = "23505"
)

// translateError maps driver-level failures to the application error kinds
// the use case layer understands. Unknown errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewTimeoutError(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgUniqueViolation:
			return errs.NewConflictError(err)
		}
	}

	return err
}
