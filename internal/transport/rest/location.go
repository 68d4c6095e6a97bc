package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
	"github.com/heartmarshall/safewalk-backend/internal/service/location"
)

type locationService interface {
	Get(ctx context.Context) domain.Location
	Set(ctx context.Context, input location.SetInput) (*domain.Location, error)
}

// LocationHandler serves the last known location.
type LocationHandler struct {
	svc locationService
	log *slog.Logger
}

// NewLocationHandler creates a LocationHandler.
func NewLocationHandler(svc locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{svc: svc, log: logger.With("handler", "location")}
}

// ts is epoch milliseconds.
type setLocationRequest struct {
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Accuracy *float64 `json:"accuracy"`
	TS       *float64 `json:"ts"`
}

// Get handles GET /api/location.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Get(r.Context()))
}

// Set handles POST /api/location.
func (h *LocationHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req setLocationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	loc, err := h.svc.Set(r.Context(), location.SetInput{
		Lat:      req.Lat,
		Lng:      req.Lng,
		Accuracy: req.Accuracy,
		TS:       req.TS,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loc)
}
