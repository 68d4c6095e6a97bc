package guardian

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// Remove deletes the guardian with the exact id and returns how many were
// removed (0 or 1). The collection is persisted even when nothing matched.
func (s *Service) Remove(ctx context.Context, id string) int {
	removed := 0

	_, err := s.doc.Mutate(ctx, func(gs []domain.Guardian) ([]domain.Guardian, error) {
		kept := gs[:0]
		for _, g := range gs {
			if removed == 0 && g.ID == id {
				removed++
				continue
			}
			kept = append(kept, g)
		}
		return kept, nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "remove guardian", slog.String("guardian_id", id), slog.String("error", err.Error()))
		return 0
	}

	s.log.InfoContext(ctx, "guardian remove",
		slog.String("guardian_id", id),
		slog.Int("removed", removed),
	)
	return removed
}
