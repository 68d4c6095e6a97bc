package store

import (
	"log/slog"
	"slices"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// NewGuardians returns the guardian collection document. The default is an
// empty, non-nil slice so it encodes as [].
func NewGuardians(b Backend, logger *slog.Logger) *Document[[]domain.Guardian] {
	return NewDocument(b, logger, Options[[]domain.Guardian]{
		Key:     KeyGuardians,
		Default: func() []domain.Guardian { return []domain.Guardian{} },
		Valid:   func(gs []domain.Guardian) bool { return gs != nil && domain.ValidGuardians(gs) },
		Clone: func(gs []domain.Guardian) []domain.Guardian {
			if gs == nil {
				return []domain.Guardian{}
			}
			return slices.Clone(gs)
		},
	})
}

// NewLastLocation returns the last-location singleton document.
func NewLastLocation(b Backend, logger *slog.Logger) *Document[domain.Location] {
	return NewDocument(b, logger, Options[domain.Location]{
		Key:     KeyLastLocation,
		Default: func() domain.Location { return domain.Location{} },
		Clone: func(l domain.Location) domain.Location {
			return domain.Location{
				Lat:      clonePtr(l.Lat),
				Lng:      clonePtr(l.Lng),
				Accuracy: clonePtr(l.Accuracy),
				TS:       clonePtr(l.TS),
			}
		},
	})
}

// NewMemory returns the memory singleton document.
func NewMemory(b Backend, logger *slog.Logger) *Document[domain.Memory] {
	return NewDocument(b, logger, Options[domain.Memory]{
		Key:     KeyMemory,
		Default: func() domain.Memory { return domain.Memory{} },
		Clone: func(m domain.Memory) domain.Memory {
			m.LastLowScenarioID = clonePtr(m.LastLowScenarioID)
			m.LastSaferAction = clonePtr(m.LastSaferAction)
			m.LastGeneratedMessage = clonePtr(m.LastGeneratedMessage)
			m.LastLocationTS = clonePtr(m.LastLocationTS)
			return m
		},
	})
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
