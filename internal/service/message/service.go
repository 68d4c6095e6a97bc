// Package message builds emergency scripts and per-guardian message packages.
package message

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

type guardianLister interface {
	List(ctx context.Context) []domain.Guardian
}

type locationGetter interface {
	Get(ctx context.Context) domain.Location
}

type memoryRecorder interface {
	RecordMessage(ctx context.Context, preview domain.MessagePreview)
}

// Service assembles emergency messages from templates and current state.
type Service struct {
	guardians guardianLister
	location  locationGetter
	memory    memoryRecorder
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new Message service.
func NewService(log *slog.Logger, guardians guardianLister, location locationGetter, memory memoryRecorder) *Service {
	return &Service{
		guardians: guardians,
		location:  location,
		memory:    memory,
		log:       log.With("service", "message"),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// PrepareInput holds the parameters for an emergency package.
type PrepareInput struct {
	RiskLevel string
	Note      string
}

// Script validates input, renders the script and records a preview.
func (s *Service) Script(ctx context.Context, input ScriptInput) (*domain.EmergencyScript, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	script := BuildScript(input)
	level := domain.NormalizeRiskLevel(input.RiskLevel)
	contact := domain.NormalizeContactType(input.ContactType)

	s.memory.RecordMessage(ctx, domain.MessagePreview{
		Kind:        domain.PreviewKindScript,
		RiskLevel:   level,
		ContactType: contact.String(),
		Preview:     script.Text,
		At:          s.now(),
	})

	s.log.InfoContext(ctx, "emergency script built",
		slog.String("risk_level", level.String()),
		slog.String("contact_type", contact.String()),
	)

	return &script, nil
}

// Prepare builds a message for every registered guardian. It fails with
// no_guardians before looking at the location, then with no_location.
func (s *Service) Prepare(ctx context.Context, input PrepareInput) (*domain.EmergencyPackage, error) {
	guardians := s.guardians.List(ctx)
	if len(guardians) == 0 {
		return nil, domain.NewPreconditionError(domain.PreconditionNoGuardians)
	}

	loc := s.location.Get(ctx)
	if !loc.HasCoordinates() {
		return nil, domain.NewPreconditionError(domain.PreconditionNoLocation)
	}

	level := domain.NormalizeRiskLevel(input.RiskLevel)
	pkg := BuildPackage(domain.RiskLevel(input.RiskLevel), input.Note, guardians, loc)

	s.memory.RecordMessage(ctx, domain.MessagePreview{
		Kind:      domain.PreviewKindPackage,
		RiskLevel: level,
		Preview:   pkg.Messages[0].Text,
		At:        s.now(),
	})

	s.log.InfoContext(ctx, "emergency package prepared",
		slog.String("risk_level", level.String()),
		slog.Int("guardians", len(guardians)),
	)

	return &pkg, nil
}
