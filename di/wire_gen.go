// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"okshouse/config"
	"okshouse/infras/fcm"
	"okshouse/infras/jwt"
	"okshouse/infras/otel"
	"okshouse/infras/postgres"
	"okshouse/infras/redis"
	repository2 "okshouse/internal/domains/admin/repository"
	"okshouse/internal/domains/admin/service"
	service4 "okshouse/internal/domains/auth/service"
	"okshouse/internal/domains/auth/session"
	service2 "okshouse/internal/domains/fcm/service"
	"okshouse/internal/domains/reservation/repository"
	service3 "okshouse/internal/domains/reservation/service"
	"okshouse/internal/handlers/admin"
	"okshouse/internal/handlers/auth"
	fcm2 "okshouse/internal/handlers/fcm"
	"okshouse/internal/handlers/public"
	"okshouse/internal/handlers/reservation"
	"okshouse/shared/cache"
	"okshouse/shared/password"
	"okshouse/transport/http"
	"okshouse/transport/http/middleware"
	"okshouse/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	client := redis.New(configConfig)
	otelOtel := otel.New(configConfig)
	handler := public.New(configConfig, connection, client, otelOtel)
	repositoryReservation := repository.New(connection, otelOtel)
	repositoryAdmin := repository2.New(connection, otelOtel)
	serviceAdmin := service.New(repositoryAdmin, otelOtel)
	sender := fcm.New(configConfig)
	serviceFCM := service2.New(client, sender, otelOtel)
	codec := password.MustNew(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceReservation := service3.New(repositoryReservation, serviceAdmin, serviceFCM, codec, configConfig, redisCache, otelOtel)
	reservationHandler := reservation.New(serviceReservation, otelOtel)
	adminHandler := admin.New(serviceAdmin, otelOtel)
	store := session.NewStore(redisCache)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service4.New(serviceAdmin, store, jwtJWT, codec, configConfig, otelOtel)
	authHandler := auth.New(serviceAuth, serviceReservation, configConfig, otelOtel)
	fcmHandler := fcm2.New(serviceFCM, otelOtel)
	domainHandlers := router.DomainHandlers{
		Public:      handler,
		Reservation: reservationHandler,
		Admin:       adminHandler,
		Auth:        authHandler,
		FCM:         fcmHandler,
	}
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	adminAuth := middleware.NewAdminAuthMiddleware(serviceAuth, otelOtel)
	routerRouter := router.New(configConfig, domainHandlers, appMiddleware, adminAuth)
	httpHTTP := http.New(configConfig, routerRouter)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, fcm.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAdminAuthMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, password.MustNew)

var reservationDomain = wire.NewSet(repository.New, service3.New)

var adminDomain = wire.NewSet(repository2.New, service.New)

var fcmDomain = wire.NewSet(service2.New)

var authDomain = wire.NewSet(session.NewStore, service4.New)

var domains = wire.NewSet(
	reservationDomain,
	adminDomain,
	fcmDomain,
	authDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), public.New, reservation.New, admin.New, auth.New, fcm2.New, router.New)
