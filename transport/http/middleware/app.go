package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"okshouse/config"
	"okshouse/infras/otel"
	"okshouse/shared/cache"
	"okshouse/shared/constant"
	"okshouse/transport/http/response"

	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
)

// apiPathPrefix bounds the origin allowlist. Everything outside it,
// the root page and the documentation, stays browsable from anywhere.
const apiPathPrefix = "/api/"

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	OriginAllowlist(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": a.getUA(r),
			"http.host":       r.Host,
			"http.source":     a.getClientIP(r),
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OriginAllowlist rejects /api requests whose Origin or Referer is
// not in the configured allowlist. Requests carrying neither header
// are rejected too, the API is meant to be called from the known
// frontends only.
func (a *appMiddleware) OriginAllowlist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, apiPathPrefix) {
			next.ServeHTTP(w, r)

			return
		}

		if a.originAllowed(r) {
			next.ServeHTTP(w, r)

			return
		}

		log.Warn().
			Str("path", r.URL.Path).
			Str("origin", r.Header.Get(constant.RequestHeaderOrigin)).
			Str("referer", r.Header.Get(constant.RequestHeaderReferer)).
			Str("ip", a.getClientIP(r)).
			Msg("blocked request from unauthorized origin")

		response.WithBlockedOrigin(w)
	})
}

func (a *appMiddleware) originAllowed(r *http.Request) bool {
	origin := r.Header.Get(constant.RequestHeaderOrigin)
	referer := r.Header.Get(constant.RequestHeaderReferer)

	if origin == "" && referer == "" {
		return false
	}

	for _, allowed := range a.config.App.AllowedOrigins {
		if origin != "" && origin == allowed {
			return true
		}

		if referer != "" && strings.HasPrefix(referer, allowed) {
			return true
		}
	}

	return false
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
