//go:build wireinject
// +build wireinject

package di

import (
	"okshouse/config"
	"okshouse/infras/fcm"
	"okshouse/infras/jwt"
	"okshouse/infras/otel"
	"okshouse/infras/postgres"
	"okshouse/infras/redis"
	"okshouse/shared/cache"
	"okshouse/shared/password"
	"okshouse/transport/http"
	"okshouse/transport/http/middleware"
	"okshouse/transport/http/router"

	adminRepository "okshouse/internal/domains/admin/repository"
	adminService "okshouse/internal/domains/admin/service"
	authService "okshouse/internal/domains/auth/service"
	"okshouse/internal/domains/auth/session"
	fcmService "okshouse/internal/domains/fcm/service"
	reservationRepository "okshouse/internal/domains/reservation/repository"
	reservationService "okshouse/internal/domains/reservation/service"

	adminHandler "okshouse/internal/handlers/admin"
	authHandler "okshouse/internal/handlers/auth"
	fcmHandler "okshouse/internal/handlers/fcm"
	publicHandler "okshouse/internal/handlers/public"
	reservationHandler "okshouse/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	fcm.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAdminAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	password.MustNew,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var fcmDomain = wire.NewSet(
	fcmService.New,
)

var authDomain = wire.NewSet(
	session.NewStore,
	authService.New,
)

var domains = wire.NewSet(
	reservationDomain,
	adminDomain,
	fcmDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	publicHandler.New,
	reservationHandler.New,
	adminHandler.New,
	authHandler.New,
	fcmHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
