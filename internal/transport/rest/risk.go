package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
	"github.com/heartmarshall/safewalk-backend/internal/service/risk"
)

type riskService interface {
	AssessRisk(ctx context.Context, input risk.AssessInput) (*domain.Assessment, error)
}

type memoryReader interface {
	Get(ctx context.Context) domain.Memory
}

// RiskHandler serves risk assessment and the memory snapshot.
type RiskHandler struct {
	svc    riskService
	memory memoryReader
	log    *slog.Logger
}

// NewRiskHandler creates a RiskHandler.
func NewRiskHandler(svc riskService, memory memoryReader, logger *slog.Logger) *RiskHandler {
	return &RiskHandler{svc: svc, memory: memory, log: logger.With("handler", "risk")}
}

type assessRiskRequest struct {
	ScenarioID       string `json:"scenarioId"`
	TimeOfDay        string `json:"timeOfDay"`
	UserAlone        *bool  `json:"userAlone"`
	NeighborhoodType string `json:"neighborhoodType"`
	RouteLighting    string `json:"routeLighting"`
}

// Assess handles POST /api/assess-risk.
func (h *RiskHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req assessRiskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.AssessRisk(r.Context(), risk.AssessInput{
		ScenarioID:       req.ScenarioID,
		TimeOfDay:        req.TimeOfDay,
		UserAlone:        req.UserAlone,
		NeighborhoodType: req.NeighborhoodType,
		RouteLighting:    req.RouteLighting,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Memory handles GET /api/memory.
func (h *RiskHandler) Memory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.memory.Get(r.Context()))
}
