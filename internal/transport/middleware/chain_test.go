package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/safewalk-backend/internal/config"
)

func tracing(name string, trace *[]string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+">")
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain_OutermostFirst(t *testing.T) {
	t.Parallel()

	var trace []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
	})

	Chain(tracing("recovery", &trace), tracing("request_id", &trace))(handler).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"recovery>", "request_id>", "handler", "<request_id", "<recovery"}, trace)
}

func TestChain_Empty(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Chain()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

// serviceStack mirrors the production order: recovery outermost, the rate
// limiter innermost.
func serviceStack(t *testing.T, logger *slog.Logger, next http.Handler) http.Handler {
	t.Helper()

	rl, err := NewRateLimiter("1-M", "/api/", nil, nil, nil, logger)
	require.NoError(t, err)

	return Chain(
		Recovery(logger),
		RequestID,
		Logger(logger),
		CORS(config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,DELETE,OPTIONS"}),
		BodyLimit(16),
		rl.Middleware(),
	)(next)
}

func TestChain_ServiceStack_PanicKeepsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := serviceStack(t, logger, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/phrases", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "req-7", rec.Header().Get(RequestIDHeader))
	assert.JSONEq(t, `{"error":"internal_error"}`, rec.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestChain_ServiceStack_RateLimitedIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	h := serviceStack(t, logger, okHandler())

	first := doRequest(h, "/api/chat", "10.0.0.1:5000")
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(h, "/api/chat", "10.0.0.1:5000")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, buf.String(), `"status":429`)
}
