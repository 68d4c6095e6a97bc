// Package guardian manages the registry of trusted contacts.
package guardian

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

type guardianDoc interface {
	Get(ctx context.Context) []domain.Guardian
	Mutate(ctx context.Context, fn func([]domain.Guardian) ([]domain.Guardian, error)) ([]domain.Guardian, error)
}

// Service provides guardian registry operations.
type Service struct {
	doc   guardianDoc
	log   *slog.Logger
	now   func() time.Time
	newID func() string
}

// NewService creates a new Guardian service.
func NewService(log *slog.Logger, doc guardianDoc) *Service {
	return &Service{
		doc:   doc,
		log:   log.With("service", "guardian"),
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// List returns all guardians in insertion order.
func (s *Service) List(ctx context.Context) []domain.Guardian {
	return s.doc.Get(ctx)
}
