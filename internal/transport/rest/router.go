package rest

import "net/http"

// Handlers groups every handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Risk      *RiskHandler
	Guardian  *GuardianHandler
	Location  *LocationHandler
	Emergency *EmergencyHandler
	Assist    *AssistHandler
	Metrics   http.Handler
}

// NewRouter registers all routes on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/assess-risk", h.Risk.Assess)
	mux.HandleFunc("GET /api/memory", h.Risk.Memory)

	mux.HandleFunc("GET /api/guardians", h.Guardian.List)
	mux.HandleFunc("POST /api/guardians", h.Guardian.Add)
	mux.HandleFunc("DELETE /api/guardians/{id}", h.Guardian.Remove)

	mux.HandleFunc("GET /api/location", h.Location.Get)
	mux.HandleFunc("POST /api/location", h.Location.Set)

	mux.HandleFunc("POST /api/emergency/script", h.Emergency.Script)
	mux.HandleFunc("POST /api/emergency/prepare", h.Emergency.Prepare)

	mux.HandleFunc("GET /api/phrases/suggest", h.Assist.Suggest)
	mux.HandleFunc("POST /api/chat", h.Assist.Chat)
	mux.HandleFunc("POST /api/tts", h.Assist.Speech)

	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	return mux
}

// RoutePattern resolves the pattern mux would dispatch r to. Unmatched
// requests yield "".
func RoutePattern(mux *http.ServeMux) func(r *http.Request) string {
	return func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	}
}
