package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/aussiebroadwan/predictclass/pkg/slogx"
)

// RateLimitConfig is a token bucket per key: RequestsPerWindow refill over
// Window, with room for Burst at once.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// StrictLimit guards credential endpoints: login, password reset, register
// and bootstrap.
var StrictLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

// ModerateLimit guards authenticated writes such as predictions.
var ModerateLimit = RateLimitConfig{RequestsPerWindow: 60, Window: time.Minute, Burst: 20}

// RateLimitFromEnv overlays RATELIMIT_{prefix}_REQUESTS, _WINDOW_SEC and
// _BURST on def. Non-positive or unparsable values are ignored.
func RateLimitFromEnv(prefix string, def RateLimitConfig) RateLimitConfig {
	cfg := def
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		cfg.RequestsPerWindow = n
	}
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		cfg.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnv("RATELIMIT_" + prefix + "_BURST"); ok {
		cfg.Burst = n
	}
	return cfg
}

func positiveEnv(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor picks the bucket a request is counted against.
type KeyExtractor func(*http.Request) string

// IPKeyExtractor uses the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SubjectKeyExtractor uses the authenticated subject, or "" before authn.
func SubjectKeyExtractor(r *http.Request) string {
	if id, ok := IdentityFromContext(r.Context()); ok {
		return id.SubjectID
	}
	return ""
}

// CompositeKeyExtractor joins the non-empty keys of extractors with sep.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(extractors))
		for _, ex := range extractors {
			if k := ex(r); k != "" {
				parts = append(parts, k)
			}
		}
		return strings.Join(parts, sep)
	}
}

const limiterSweepEvery = 5 * time.Minute

type limiterSet struct {
	limit rate.Limit
	burst int

	mu        sync.Mutex
	byKey     map[string]*rate.Limiter
	lastSweep time.Time
}

func (s *limiterSet) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastSweep) >= limiterSweepEvery {
		// A full bucket means the key has been idle long enough to forget.
		for k, l := range s.byKey {
			if l.Tokens() >= float64(s.burst) {
				delete(s.byKey, k)
			}
		}
		s.lastSweep = time.Now()
	}

	l, ok := s.byKey[key]
	if !ok {
		l = rate.NewLimiter(s.limit, s.burst)
		s.byKey[key] = l
	}
	return l
}

// RateLimitMiddleware rejects requests over cfg with 429 and a Retry-After
// header. Requests with no key pass through.
func RateLimitMiddleware(cfg RateLimitConfig, key KeyExtractor) Middleware {
	set := &limiterSet{
		limit:     rate.Limit(float64(cfg.RequestsPerWindow) / cfg.Window.Seconds()),
		burst:     cfg.Burst,
		byKey:     make(map[string]*rate.Limiter),
		lastSweep: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				slogx.FromContext(r.Context()).Warn("rate limit: no key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			l := set.get(k)
			if l.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			res := l.Reserve()
			retryAfter := max(int(res.Delay().Seconds()), 1)
			res.Cancel()

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"retry_after", retryAfter,
			)
			WriteError(w, http.StatusTooManyRequests, "rate_limited", "too many requests, try again later")
		})
	}
}

// RateLimitByIP counts requests per client address.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, IPKeyExtractor)
}

// RateLimitBySubject counts per authenticated subject, falling back to the
// client address. Place it after AuthnMiddleware.
func RateLimitBySubject(cfg RateLimitConfig) Middleware {
	return RateLimitMiddleware(cfg, CompositeKeyExtractor(":", SubjectKeyExtractor, IPKeyExtractor))
}
