package router

import (
	"okshouse/config"
	adminHandler "okshouse/internal/handlers/admin"
	authHandler "okshouse/internal/handlers/auth"
	fcmHandler "okshouse/internal/handlers/fcm"
	publicHandler "okshouse/internal/handlers/public"
	reservationHandler "okshouse/internal/handlers/reservation"
	"okshouse/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Public      publicHandler.Handler
	Reservation reservationHandler.Handler
	Admin       adminHandler.Handler
	Auth        authHandler.Handler
	FCM         fcmHandler.Handler
}

type Router struct {
	Config         *config.Config
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AdminAuth      middleware.AdminAuth
}

func New(
	cfg *config.Config,
	domainHandlers DomainHandlers,
	appMiddleware middleware.AppMiddleware,
	adminAuth middleware.AdminAuth,
) Router {
	return Router{
		Config:         cfg,
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AdminAuth:      adminAuth,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.Config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.Config.App.AllowedOrigins,
			AllowedMethods:   r.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   r.Config.App.CORS.AllowedHeaders,
			AllowCredentials: r.Config.App.CORS.AllowCredentials,
			MaxAge:           r.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.OriginAllowlist)
	router.Use(r.AppMiddleware.RateLimit())

	router.Get("/docs/*", httpSwagger.Handler())

	router.Route("/api/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Public.Router(routerGroup)

		routerGroup.Route("/user", func(userGroup chi.Router) {
			r.DomainHandlers.Reservation.UserRouter(userGroup)
			r.DomainHandlers.Auth.UserRouter(userGroup)
		})

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			r.DomainHandlers.Auth.AdminRouter(adminGroup, r.AdminAuth.RequireAdmin)

			adminGroup.Group(func(guarded chi.Router) {
				guarded.Use(r.AdminAuth.RequireAdmin)

				r.DomainHandlers.Reservation.AdminRouter(guarded)
				r.DomainHandlers.Admin.Router(guarded)
				r.DomainHandlers.FCM.Router(guarded)
			})
		})
	})
}
