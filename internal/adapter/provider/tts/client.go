// Package tts adapts the OpenAI speech endpoint to the speech service.
package tts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Config holds the text-to-speech provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client synthesizes mp3 audio.
type Client struct {
	client *openai.Client
	model  string
	log    *slog.Logger
}

// New creates a Client. BaseURL is optional and defaults to the OpenAI API.
func New(cfg Config, logger *slog.Logger) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	model := cfg.Model
	if model == "" {
		model = string(openai.TTSModel1)
	}
	return &Client{
		client: openai.NewClientWithConfig(oc),
		model:  model,
		log:    logger.With("adapter", "tts"),
	}
}

// Synthesize returns the mp3 bytes for text spoken in voice.
func (c *Client) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	c.log.DebugContext(ctx, "tts request", slog.String("voice", voice), slog.Int("chars", len(text)))

	resp, err := c.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(c.model),
		Input:          text,
		Voice:          openai.SpeechVoice(voice),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("tts: create speech: %w", err)
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("tts: read audio: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("tts: empty audio")
	}
	return data, nil
}
