// Package chat answers short safety questions, with rule-based replies and
// optional delegation to an AI assistant.
package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// Reply sources.
const (
	SourceRules = "rules"
	SourceAI    = "ai"
)

type assistant interface {
	Reply(ctx context.Context, message, riskLevel string) (string, error)
}

// Service produces chat replies.
type Service struct {
	assistant assistant
	timeout   time.Duration
	log       *slog.Logger
}

// NewService creates a new Chat service. assistant may be nil, in which case
// only scripted replies are returned.
func NewService(log *slog.Logger, assistant assistant, timeout time.Duration) *Service {
	return &Service{
		assistant: assistant,
		timeout:   timeout,
		log:       log.With("service", "chat"),
	}
}

// ReplyInput is a user message with the current risk context.
type ReplyInput struct {
	Message   string
	RiskLevel string
}

// Reply classifies the message and answers it. The intent always comes from
// the rules; the text comes from the assistant when one is configured and
// succeeds.
func (s *Service) Reply(ctx context.Context, input ReplyInput) domain.ChatReply {
	intent := Classify(input.Message, input.RiskLevel)
	reply := domain.ChatReply{
		Reply:  ScriptedReply(intent),
		Intent: intent,
		Source: SourceRules,
	}

	if s.assistant == nil || intent == IntentPromptContext {
		return reply
	}

	aiCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		aiCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.assistant.Reply(aiCtx, strings.TrimSpace(input.Message), input.RiskLevel)
	if err != nil {
		s.log.WarnContext(ctx, "assistant failed, using scripted reply",
			slog.String("intent", intent),
			slog.String("error", err.Error()),
		)
		return reply
	}
	text = strings.TrimSpace(text)
	if text == "" {
		s.log.WarnContext(ctx, "assistant returned empty reply", slog.String("intent", intent))
		return reply
	}

	reply.Reply = text
	reply.Source = SourceAI
	return reply
}
