package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
	"github.com/heartmarshall/safewalk-backend/internal/service/guardian"
)

type guardianService interface {
	List(ctx context.Context) []domain.Guardian
	Add(ctx context.Context, input guardian.AddInput) (*domain.Guardian, error)
	Remove(ctx context.Context, id string) int
}

// GuardianHandler serves the guardian registry.
type GuardianHandler struct {
	svc guardianService
	log *slog.Logger
}

// NewGuardianHandler creates a GuardianHandler.
func NewGuardianHandler(svc guardianService, logger *slog.Logger) *GuardianHandler {
	return &GuardianHandler{svc: svc, log: logger.With("handler", "guardian")}
}

type addGuardianRequest struct {
	Name         string `json:"name"`
	Method       string `json:"method"`
	Value        string `json:"value"`
	Relationship string `json:"relationship"`
}

type listGuardiansResponse struct {
	Guardians []domain.Guardian `json:"guardians"`
}

type removeGuardianResponse struct {
	Removed int `json:"removed"`
}

// List handles GET /api/guardians.
func (h *GuardianHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listGuardiansResponse{Guardians: h.svc.List(r.Context())})
}

// Add handles POST /api/guardians.
func (h *GuardianHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addGuardianRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	g, err := h.svc.Add(r.Context(), guardian.AddInput{
		Name:         req.Name,
		Method:       req.Method,
		Value:        req.Value,
		Relationship: req.Relationship,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, g)
}

// Remove handles DELETE /api/guardians/{id}. Unknown ids report zero removed.
func (h *GuardianHandler) Remove(w http.ResponseWriter, r *http.Request) {
	n := h.svc.Remove(r.Context(), r.PathValue("id"))
	writeJSON(w, http.StatusOK, removeGuardianResponse{Removed: n})
}
