package handler

import (
	"net/http"

	"okshouse/config"
	"okshouse/di"
	"okshouse/shared/logger"

	_ "okshouse/docs"
)

// Handler is the serverless entry point. Every invocation wires the
// full service and delegates to the router.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
