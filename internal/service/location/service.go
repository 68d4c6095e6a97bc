// Package location tracks the single most recent reported coordinate.
package location

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

type locationDoc interface {
	Get(ctx context.Context) domain.Location
	Mutate(ctx context.Context, fn func(domain.Location) (domain.Location, error)) (domain.Location, error)
}

type memoryRecorder interface {
	RecordLocation(ctx context.Context, ts time.Time)
}

// Service provides last-location operations.
type Service struct {
	doc    locationDoc
	memory memoryRecorder
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new Location service.
func NewService(log *slog.Logger, doc locationDoc, memory memoryRecorder) *Service {
	return &Service{
		doc:    doc,
		memory: memory,
		log:    log.With("service", "location"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetInput carries a reported coordinate. TS is epoch milliseconds.
type SetInput struct {
	Lat      *float64
	Lng      *float64
	Accuracy *float64
	TS       *float64
}

// Validate rejects missing or non-finite coordinates.
func (i SetInput) Validate() error {
	var errs []domain.FieldError
	if !domain.IsFinite(i.Lat) {
		errs = append(errs, domain.FieldError{Field: "lat", Code: "invalid_coordinates", Message: "lat must be a finite number"})
	}
	if !domain.IsFinite(i.Lng) {
		errs = append(errs, domain.FieldError{Field: "lng", Code: "invalid_coordinates", Message: "lng must be a finite number"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Get returns the last stored location; all fields are nil if none was set.
func (s *Service) Get(ctx context.Context) domain.Location {
	return s.doc.Get(ctx)
}

// Set overwrites the stored location and records its timestamp in Memory.
func (s *Service) Set(ctx context.Context, input SetInput) (*domain.Location, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ts := s.now()
	if domain.IsFinite(input.TS) {
		ts = time.UnixMilli(int64(math.Round(*input.TS))).UTC()
	}

	lat, lng := *input.Lat, *input.Lng
	loc := domain.Location{Lat: &lat, Lng: &lng, TS: &ts}
	if domain.IsFinite(input.Accuracy) {
		acc := *input.Accuracy
		loc.Accuracy = &acc
	}

	stored, err := s.doc.Mutate(ctx, func(domain.Location) (domain.Location, error) {
		return loc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("set location: %w", err)
	}

	s.memory.RecordLocation(ctx, ts)

	s.log.DebugContext(ctx, "location updated", slog.Time("ts", ts))
	return &stored, nil
}
