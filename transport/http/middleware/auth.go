package middleware

import (
	"context"
	"net/http"

	"okshouse/infras/jwt"
	"okshouse/infras/otel"
	authService "okshouse/internal/domains/auth/service"
	"okshouse/shared/constant"
	"okshouse/shared/failure"
	"okshouse/transport/http/response"
)

// AdminAuth guards the admin route tree. A request passes only with a
// Bearer access token whose signature, type, and server-side session
// all check out.
type AdminAuth interface {
	RequireAdmin(next http.Handler) http.Handler
}

type adminAuthImpl struct {
	auth authService.Auth
	otel otel.Otel
}

func NewAdminAuthMiddleware(auth authService.Auth, otel otel.Otel) AdminAuth {
	return &adminAuthImpl{
		auth: auth,
		otel: otel,
	}
}

func (m *adminAuthImpl) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "admin_auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "admin_auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			err := failure.Unauthorized("missing or malformed authorization header")
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		claims, err := m.auth.ValidateAccess(ctx, tokenString)
		if err != nil {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyAdminID, claims.AdminID)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminName, claims.AdminName)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
