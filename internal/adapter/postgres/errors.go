package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/discussion-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors.
//
//   - pgx.ErrNoRows                → domain.ErrNotFound
//   - 23505 unique_violation       → domain.ErrAlreadyExists
//   - 23503 foreign_key_violation  → domain.ErrNotFound
//   - 23514 check_violation        → domain.ErrValidation
//   - context.DeadlineExceeded     → domain.ErrTimeout
//   - context.Canceled             → passed through
//   - anything else                → domain.ErrPersistence
//
// The original error stays in the chain so errors.As still finds *pgconn.PgError.
func MapError(err error, entity string, id string) error {
	if err == nil {
		return nil
	}

	prefix := entity
	if id != "" {
		prefix = entity + " " + id
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %w", prefix, domain.ErrTimeout, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %w", prefix, domain.ErrValidation)
		case "57014": // query_canceled (statement_timeout)
			return fmt.Errorf("%s: %w: %w", prefix, domain.ErrTimeout, err)
		}
	}

	return fmt.Errorf("%s: %w: %w", prefix, domain.ErrPersistence, err)
}
