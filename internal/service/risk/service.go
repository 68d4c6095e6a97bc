// Package risk scores walking scenarios and records low-risk outcomes.
package risk

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

type memoryRecorder interface {
	RecordLowRisk(ctx context.Context, scenarioID, saferAction string)
}

type assessmentObserver interface {
	ObserveAssessment(level domain.RiskLevel)
}

// Service runs the scoring engine behind input validation.
type Service struct {
	memory   memoryRecorder
	observer assessmentObserver
	log      *slog.Logger
}

// NewService creates a new Risk service. observer may be nil.
func NewService(log *slog.Logger, memory memoryRecorder, observer assessmentObserver) *Service {
	return &Service{
		memory:   memory,
		observer: observer,
		log:      log.With("service", "risk"),
	}
}

// AssessInput holds the raw scenario fields. UserAlone is a pointer so that
// an omitted value can be told apart from false.
type AssessInput struct {
	ScenarioID       string
	TimeOfDay        string
	UserAlone        *bool
	NeighborhoodType string
	RouteLighting    string
}

// Validate reports every missing field at once.
func (i AssessInput) Validate() error {
	var errs []domain.FieldError
	missing := func(field string) {
		errs = append(errs, domain.FieldError{Field: field, Code: "missing", Message: "required"})
	}

	if strings.TrimSpace(i.ScenarioID) == "" {
		missing("scenarioId")
	}
	if strings.TrimSpace(i.TimeOfDay) == "" {
		missing("timeOfDay")
	}
	if i.UserAlone == nil {
		missing("userAlone")
	}
	if strings.TrimSpace(i.NeighborhoodType) == "" {
		missing("neighborhoodType")
	}
	if strings.TrimSpace(i.RouteLighting) == "" {
		missing("routeLighting")
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AssessRisk validates input, scores the scenario and, when the result is
// LOW, records it into Memory.
func (s *Service) AssessRisk(ctx context.Context, input AssessInput) (*domain.Assessment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := Assess(domain.Scenario{
		ScenarioID:       input.ScenarioID,
		TimeOfDay:        input.TimeOfDay,
		UserAlone:        *input.UserAlone,
		NeighborhoodType: input.NeighborhoodType,
		RouteLighting:    input.RouteLighting,
	})

	if result.RiskLevel == domain.RiskLevelLow {
		s.memory.RecordLowRisk(ctx, result.ScenarioID, result.SaferAction)
	}
	if s.observer != nil {
		s.observer.ObserveAssessment(result.RiskLevel)
	}

	s.log.InfoContext(ctx, "risk assessed",
		slog.String("scenario_id", result.ScenarioID),
		slog.Int("score", result.RiskScore),
		slog.String("level", result.RiskLevel.String()),
	)

	return &result, nil
}
