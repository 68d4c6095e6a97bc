// Package assistant adapts the Anthropic Messages API to the chat service.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const systemPrompt = `You are a calm personal-safety companion inside a walking safety app.
Reply in at most three short sentences of plain text.
Give concrete, practical steps: move toward light and people, contact a trusted person, call emergency services when in danger.
Never promise that help is on the way and never claim to have contacted anyone.`

// Config holds the assistant settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int64
}

// Client produces chat replies with Claude.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client. BaseURL is optional.
func New(cfg Config, logger *slog.Logger) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(1)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 256
	}
	return &Client{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "assistant"),
	}
}

// Reply asks the model for a short answer to message given the risk level.
func (c *Client) Reply(ctx context.Context, message, riskLevel string) (string, error) {
	prompt := fmt.Sprintf("Current risk level: %s\nUser message: %s", orUnknown(riskLevel), message)

	c.log.DebugContext(ctx, "assistant request", slog.String("model", c.model))

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("assistant: messages api: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("assistant: empty response")
	}
	return b.String(), nil
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return strings.ToUpper(s)
}
