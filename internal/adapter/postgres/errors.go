package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// MapError converts pgx errors to domain errors.
// context.DeadlineExceeded and context.Canceled pass through unchanged.
func MapError(err error, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("document %s: %w", key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("document %s: %w", key, domain.ErrNotFound)
	}

	return fmt.Errorf("document %s: %w", key, err)
}
