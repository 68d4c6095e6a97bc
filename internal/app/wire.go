package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/safewalk-backend/internal/adapter/provider/assistant"
	"github.com/heartmarshall/safewalk-backend/internal/adapter/provider/tts"
	"github.com/heartmarshall/safewalk-backend/internal/config"
	"github.com/heartmarshall/safewalk-backend/internal/metrics"
	"github.com/heartmarshall/safewalk-backend/internal/service/chat"
	"github.com/heartmarshall/safewalk-backend/internal/service/guardian"
	"github.com/heartmarshall/safewalk-backend/internal/service/location"
	"github.com/heartmarshall/safewalk-backend/internal/service/memory"
	"github.com/heartmarshall/safewalk-backend/internal/service/message"
	"github.com/heartmarshall/safewalk-backend/internal/service/phrase"
	"github.com/heartmarshall/safewalk-backend/internal/service/risk"
	"github.com/heartmarshall/safewalk-backend/internal/service/speech"
	"github.com/heartmarshall/safewalk-backend/internal/store"
	"github.com/heartmarshall/safewalk-backend/internal/transport/middleware"
	"github.com/heartmarshall/safewalk-backend/internal/transport/rest"
)

type replier interface {
	Reply(ctx context.Context, message, riskLevel string) (string, error)
}

type synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// newHandler wires documents, services and providers into the HTTP stack.
// Providers are only built when their API keys are configured.
func newHandler(cfg *config.Config, logger *slog.Logger, backend store.Backend, reg *prometheus.Registry) (http.Handler, error) {
	m := metrics.New(reg)

	memorySvc := memory.NewService(logger, store.NewMemory(backend, logger))
	guardianSvc := guardian.NewService(logger, store.NewGuardians(backend, logger))
	locationSvc := location.NewService(logger, store.NewLastLocation(backend, logger), memorySvc)
	riskSvc := risk.NewService(logger, memorySvc, m)
	messageSvc := message.NewService(logger, guardianSvc, locationSvc, memorySvc)

	var ai replier
	if cfg.AI.Enabled() {
		ai = assistant.New(assistant.Config{
			APIKey:    cfg.AI.APIKey,
			BaseURL:   cfg.AI.BaseURL,
			Model:     cfg.AI.Model,
			MaxTokens: cfg.AI.MaxTokens,
		}, logger)
	}
	chatSvc := chat.NewService(logger, ai, cfg.AI.Timeout)

	var voice synthesizer
	if cfg.Speech.Enabled() {
		voice = tts.New(tts.Config{
			APIKey:  cfg.Speech.APIKey,
			BaseURL: cfg.Speech.BaseURL,
			Model:   cfg.Speech.Model,
			Timeout: cfg.Speech.Timeout,
		}, logger)
	}
	speechSvc := speech.NewService(logger, voice, m, speech.Config{
		DefaultVoice: cfg.Speech.Voice,
		CacheTTL:     cfg.Speech.CacheTTL,
	})

	mux := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(backend, cfg.Storage.Driver, BuildVersion()),
		Risk:      rest.NewRiskHandler(riskSvc, memorySvc, logger),
		Guardian:  rest.NewGuardianHandler(guardianSvc, logger),
		Location:  rest.NewLocationHandler(locationSvc, logger),
		Emergency: rest.NewEmergencyHandler(messageSvc, logger),
		Assist:    rest.NewAssistHandler(phrase.Suggest, chatSvc, speechSvc, logger),
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})
	route := rest.RoutePattern(mux)

	chain := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Metrics(m, route),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	}
	if cfg.RateLimit.Enabled {
		rl, err := middleware.NewRateLimiter(cfg.RateLimit.Rate, "/api/", nil, route, m, logger)
		if err != nil {
			return nil, err
		}
		chain = append(chain, rl.Middleware())
	}

	return middleware.Chain(chain...)(mux), nil
}
