package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
	"github.com/heartmarshall/safewalk-backend/internal/service/chat"
	"github.com/heartmarshall/safewalk-backend/internal/service/speech"
)

type phraseSuggester func(prefix string) []string

type chatService interface {
	Reply(ctx context.Context, input chat.ReplyInput) domain.ChatReply
}

type speechService interface {
	Synthesize(ctx context.Context, input speech.SynthesizeInput) (*speech.Audio, error)
}

// AssistHandler serves phrase suggestions, chat replies and speech.
type AssistHandler struct {
	suggest phraseSuggester
	chat    chatService
	speech  speechService
	log     *slog.Logger
}

// NewAssistHandler creates an AssistHandler.
func NewAssistHandler(suggest phraseSuggester, chatSvc chatService, speechSvc speechService, logger *slog.Logger) *AssistHandler {
	return &AssistHandler{suggest: suggest, chat: chatSvc, speech: speechSvc, log: logger.With("handler", "assist")}
}

type suggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

type chatContext struct {
	RiskLevel string `json:"riskLevel"`
}

type chatRequest struct {
	Message   string      `json:"message"`
	Context   chatContext `json:"context"`
	RiskLevel string      `json:"riskLevel"`
}

type ttsRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice"`
}

// Suggest handles GET /api/phrases/suggest?prefix=.
func (h *AssistHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, suggestResponse{Suggestions: h.suggest(r.URL.Query().Get("prefix"))})
}

// Chat handles POST /api/chat. The risk level may be given either inside
// "context" or at the top level; the nested form wins.
func (h *AssistHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	level := req.Context.RiskLevel
	if level == "" {
		level = req.RiskLevel
	}

	writeJSON(w, http.StatusOK, h.chat.Reply(r.Context(), chat.ReplyInput{
		Message:   req.Message,
		RiskLevel: level,
	}))
}

// Speech handles POST /api/tts and streams the synthesized audio.
func (h *AssistHandler) Speech(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	audio, err := h.speech.Synthesize(r.Context(), speech.SynthesizeInput{
		Text:  req.Text,
		Voice: req.Voice,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", audio.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(audio.Data)))
	w.Header().Set("X-Cache", cacheHeader(audio.Cached))
	w.WriteHeader(http.StatusOK)
	w.Write(audio.Data) //nolint:errcheck
}

func cacheHeader(hit bool) string {
	if hit {
		return "HIT"
	}
	return "MISS"
}
