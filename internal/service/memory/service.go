// Package memory keeps the diagnostic snapshot of the latest low-risk
// outcome, generated message and location update.
package memory

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

type memoryDoc interface {
	Get(ctx context.Context) domain.Memory
	Mutate(ctx context.Context, fn func(domain.Memory) (domain.Memory, error)) (domain.Memory, error)
}

// Service records side effects of other operations into Memory.
type Service struct {
	doc memoryDoc
	log *slog.Logger
}

// NewService creates a new Memory service.
func NewService(log *slog.Logger, doc memoryDoc) *Service {
	return &Service{
		doc: doc,
		log: log.With("service", "memory"),
	}
}

// Get returns the current snapshot.
func (s *Service) Get(ctx context.Context) domain.Memory {
	return s.doc.Get(ctx)
}

// RecordLowRisk stores the id and safer action of a LOW assessment.
func (s *Service) RecordLowRisk(ctx context.Context, scenarioID, saferAction string) {
	s.update(ctx, "low_risk", func(m domain.Memory) domain.Memory {
		m.LastLowScenarioID = &scenarioID
		m.LastSaferAction = &saferAction
		return m
	})
}

// RecordMessage stores a preview of the last generated message.
func (s *Service) RecordMessage(ctx context.Context, preview domain.MessagePreview) {
	preview.Preview = domain.TruncatePreview(preview.Preview)
	s.update(ctx, "message", func(m domain.Memory) domain.Memory {
		m.LastGeneratedMessage = &preview
		return m
	})
}

// RecordLocation stores the timestamp of the last location update.
func (s *Service) RecordLocation(ctx context.Context, ts time.Time) {
	s.update(ctx, "location", func(m domain.Memory) domain.Memory {
		m.LastLocationTS = &ts
		return m
	})
}

func (s *Service) update(ctx context.Context, what string, fn func(domain.Memory) domain.Memory) {
	_, err := s.doc.Mutate(ctx, func(m domain.Memory) (domain.Memory, error) {
		m = fn(m)
		m.HasMemory = true
		return m, nil
	})
	if err != nil {
		s.log.ErrorContext(ctx, "memory update failed", slog.String("kind", what), slog.String("error", err.Error()))
		return
	}
	s.log.DebugContext(ctx, "memory updated", slog.String("kind", what))
}
