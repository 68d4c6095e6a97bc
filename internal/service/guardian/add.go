package guardian

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// Add validates input and appends a new guardian. Duplicate contact values
// are accepted.
func (s *Service) Add(ctx context.Context, input AddInput) (*domain.Guardian, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g := domain.Guardian{
		ID:           s.newID(),
		Name:         strings.TrimSpace(input.Name),
		Method:       input.method(),
		Value:        strings.TrimSpace(input.Value),
		Relationship: strings.TrimSpace(input.Relationship),
		CreatedAt:    s.now(),
	}

	_, err := s.doc.Mutate(ctx, func(gs []domain.Guardian) ([]domain.Guardian, error) {
		return append(gs, g), nil
	})
	if err != nil {
		return nil, fmt.Errorf("add guardian: %w", err)
	}

	s.log.InfoContext(ctx, "guardian added",
		slog.String("guardian_id", g.ID),
		slog.String("method", g.Method.String()),
	)

	return &g, nil
}
