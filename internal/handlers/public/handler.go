package public

import (
	"net/http"

	"okshouse/config"
	"okshouse/infras/otel"
	"okshouse/infras/postgres"
	"okshouse/shared/constant"
	"okshouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
)

type Handler struct {
	cfg   *config.Config
	db    *postgres.Connection
	redis *goRedis.Client
	otel  otel.Otel
}

func New(cfg *config.Config, db *postgres.Connection, redis *goRedis.Client, otel otel.Otel) Handler {
	return Handler{
		cfg:   cfg,
		db:    db,
		redis: redis,
		otel:  otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/public", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.Root)
		routerGroup.Get("/health", handler.Health)
	})
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status string `json:"status"`
	Async  bool   `json:"async"`
}

// Root greets callers with the service name and version.
// @Summary Service info
// @Description Returns the service name and version.
// @Tags Public
// @Produce json
// @Success 200 {object} response.Data[rootResponse]
// @Router /v1/public [get]
func (handler *Handler) Root(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Root")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, rootResponse{
		Message: handler.cfg.App.Name,
		Version: handler.cfg.App.Version,
	})
}

// Health reports whether the backing stores are reachable.
// @Summary Health check
// @Description Pings the database and cache.
// @Tags Public
// @Produce json
// @Success 200 {object} response.Data[healthResponse]
// @Failure 503 {object} response.Message
// @Router /v1/public/health [get]
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if err := handler.db.Read.PingContext(ctx); err != nil {
		scope.TraceError(err)
		response.WithUnhealthy(w)

		return
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		scope.TraceError(err)
		response.WithUnhealthy(w)

		return
	}

	response.WithJSON(w, http.StatusOK, healthResponse{
		Status: "ok",
		Async:  true,
	})
}
