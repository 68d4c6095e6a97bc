// Package speech turns short safety phrases into audio through an external
// text-to-speech provider, caching results in memory.
package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	gocache "github.com/patrickmn/go-cache"

	"github.com/heartmarshall/safewalk-backend/internal/domain"
)

// MaxTextRunes is the longest text accepted for synthesis.
const MaxTextRunes = 500

type synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

type cacheObserver interface {
	ObserveSpeechCache(hit bool)
}

// Audio is a synthesized clip.
type Audio struct {
	Data        []byte
	ContentType string
	Cached      bool
}

// Service validates requests and fronts the provider with a cache.
type Service struct {
	provider     synthesizer
	observer     cacheObserver
	cache        *gocache.Cache
	defaultVoice string
	log          *slog.Logger
}

// Config holds Service settings.
type Config struct {
	DefaultVoice string
	CacheTTL     time.Duration
}

// NewService creates a new Speech service. provider may be nil, in which case
// Synthesize returns domain.ErrUnavailable. observer may be nil.
func NewService(log *slog.Logger, provider synthesizer, observer cacheObserver, cfg Config) *Service {
	return &Service{
		provider:     provider,
		observer:     observer,
		cache:        gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		defaultVoice: cfg.DefaultVoice,
		log:          log.With("service", "speech"),
	}
}

// SynthesizeInput holds the text to speak and an optional voice.
type SynthesizeInput struct {
	Text  string
	Voice string
}

// Validate checks text presence and length.
func (i SynthesizeInput) Validate() error {
	text := strings.TrimSpace(i.Text)
	switch {
	case text == "":
		return domain.NewValidationError("text", "text_required", "text is required")
	case utf8.RuneCountInString(text) > MaxTextRunes:
		return domain.NewValidationError("text", "text_too_long", fmt.Sprintf("text must be at most %d characters", MaxTextRunes))
	}
	return nil
}

// Synthesize returns mp3 audio for the input text.
func (s *Service) Synthesize(ctx context.Context, input SynthesizeInput) (*Audio, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if s.provider == nil {
		return nil, fmt.Errorf("speech provider not configured: %w", domain.ErrUnavailable)
	}

	text := strings.TrimSpace(input.Text)
	voice := strings.TrimSpace(input.Voice)
	if voice == "" {
		voice = s.defaultVoice
	}

	key := cacheKey(voice, text)
	if v, ok := s.cache.Get(key); ok {
		s.observe(true)
		return &Audio{Data: v.([]byte), ContentType: "audio/mpeg", Cached: true}, nil
	}
	s.observe(false)

	data, err := s.provider.Synthesize(ctx, text, voice)
	if err != nil {
		s.log.ErrorContext(ctx, "speech synthesis failed", slog.String("voice", voice), slog.String("error", err.Error()))
		return nil, fmt.Errorf("synthesize: %w", domain.ErrUnavailable)
	}

	s.cache.SetDefault(key, data)

	s.log.InfoContext(ctx, "speech synthesized",
		slog.String("voice", voice),
		slog.Int("bytes", len(data)),
	)
	return &Audio{Data: data, ContentType: "audio/mpeg"}, nil
}

func (s *Service) observe(hit bool) {
	if s.observer != nil {
		s.observer.ObserveSpeechCache(hit)
	}
}

func cacheKey(voice, text string) string {
	sum := sha256.Sum256([]byte(voice + "\x00" + text))
	return hex.EncodeToString(sum[:])
}
