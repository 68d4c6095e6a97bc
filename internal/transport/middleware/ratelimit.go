package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/heartmarshall/safewalk-backend/pkg/ctxutil"
)

// RouteFunc resolves the low-cardinality route label for a request.
type RouteFunc func(r *http.Request) string

type rateObserver interface {
	ObserveRateLimited(route string)
}

// RateLimiter throttles requests under a path prefix per client IP.
type RateLimiter struct {
	lim      *limiter.Limiter
	prefix   string
	route    RouteFunc
	observer rateObserver
	log      *slog.Logger
}

// NewRateLimiter builds a limiter for a formatted rate such as "60-M".
// A nil store selects the in-process memory store; observer may be nil.
func NewRateLimiter(rate, prefix string, store limiter.Store, route RouteFunc, observer rateObserver, logger *slog.Logger) (*RateLimiter, error) {
	r, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("rate limit %q: %w", rate, err)
	}
	if store == nil {
		store = memory.NewStore()
	}
	if route == nil {
		route = func(r *http.Request) string { return r.URL.Path }
	}
	return &RateLimiter{
		lim:      limiter.New(store, r),
		prefix:   prefix,
		route:    route,
		observer: observer,
		log:      logger.With("middleware", "ratelimit"),
	}, nil
}

// Middleware returns the HTTP middleware. Requests outside the prefix pass
// through untouched. A failing store lets the request through.
func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, rl.prefix) {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			ctx := ctxutil.WithClientIP(r.Context(), ip)
			r = r.WithContext(ctx)

			lc, err := rl.lim.Get(ctx, ip)
			if err != nil {
				rl.log.WarnContext(ctx, "rate limit store failed", slog.String("error", err.Error()))
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))

			if lc.Reached {
				h.Set("Retry-After", strconv.Itoa(retryAfterSeconds(time.Unix(lc.Reset, 0))))
				if rl.observer != nil {
					rl.observer.ObserveRateLimited(rl.route(r))
				}
				h.Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate_limited"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(reset time.Time) int {
	secs := int(math.Ceil(time.Until(reset).Seconds()))
	return max(secs, 1)
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return strings.TrimPrefix(host, "::ffff:")
}
