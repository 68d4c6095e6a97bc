package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
	"github.com/heartmarshall/safewalk-backend/internal/service/message"
)

type messageService interface {
	Script(ctx context.Context, input message.ScriptInput) (*domain.EmergencyScript, error)
	Prepare(ctx context.Context, input message.PrepareInput) (*domain.EmergencyPackage, error)
}

// EmergencyHandler serves emergency scripts and guardian packages.
type EmergencyHandler struct {
	svc messageService
	log *slog.Logger
}

// NewEmergencyHandler creates an EmergencyHandler.
func NewEmergencyHandler(svc messageService, logger *slog.Logger) *EmergencyHandler {
	return &EmergencyHandler{svc: svc, log: logger.With("handler", "emergency")}
}

type scriptRequest struct {
	RiskLevel    string `json:"riskLevel"`
	ContactType  string `json:"contactType"`
	LocationText string `json:"locationText"`
	ExtraContext string `json:"extraContext"`
}

type prepareRequest struct {
	RiskLevel string `json:"riskLevel"`
	Note      string `json:"note"`
}

// Script handles POST /api/emergency/script.
func (h *EmergencyHandler) Script(w http.ResponseWriter, r *http.Request) {
	var req scriptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	script, err := h.svc.Script(r.Context(), message.ScriptInput{
		RiskLevel:    req.RiskLevel,
		ContactType:  req.ContactType,
		LocationText: req.LocationText,
		ExtraContext: req.ExtraContext,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, script)
}

// Prepare handles POST /api/emergency/prepare. Missing guardians or location
// yield 409 with the precondition code.
func (h *EmergencyHandler) Prepare(w http.ResponseWriter, r *http.Request) {
	var req prepareRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.svc.Prepare(r.Context(), message.PrepareInput{
		RiskLevel: req.RiskLevel,
		Note:      req.Note,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pkg)
}
