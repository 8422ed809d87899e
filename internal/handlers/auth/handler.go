package auth

import (
	"net/http"

	"okshouse/config"
	"okshouse/infras/jwt"
	"okshouse/infras/otel"
	"okshouse/internal/domains/auth/model/dto"
	authService "okshouse/internal/domains/auth/service"
	reservationDTO "okshouse/internal/domains/reservation/model/dto"
	reservationService "okshouse/internal/domains/reservation/service"
	"okshouse/shared/constant"
	"okshouse/shared/failure"
	"okshouse/shared/validator"
	"okshouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      authService.Auth
	reservations reservationService.Reservation
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	service authService.Auth,
	reservations reservationService.Reservation,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		service:      service,
		reservations: reservations,
		cfg:          cfg,
		otel:         otel,
	}
}

// UserRouter mounts the public verification endpoints.
func (handler *Handler) UserRouter(router chi.Router) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/verify", handler.VerifyOwner)
		routerGroup.Post("/login", handler.LoginWithKey)
	})
}

// AdminRouter mounts the admin authentication endpoints. Token issuance
// and refresh stay outside the auth guard, the rest sits behind it.
func (handler *Handler) AdminRouter(router chi.Router, requireAdmin func(http.Handler) http.Handler) {
	router.Route("/auth", func(routerGroup chi.Router) {
		routerGroup.Post("/verify-phone", handler.VerifyPhone)
		routerGroup.Post("/refresh", handler.Refresh)
		routerGroup.Post("/logout", handler.Logout)

		routerGroup.Group(func(guarded chi.Router) {
			guarded.Use(requireAdmin)
			guarded.Get("/me", handler.Me)
		})
	})
}

func (handler *Handler) refreshCookieSameSite() http.SameSite {
	switch handler.cfg.JWT.RefreshCookieSameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (handler *Handler) setRefreshCookie(w http.ResponseWriter, token string, maxAgeSeconds int) {
	http.SetCookie(w, &http.Cookie{
		Name:     handler.cfg.JWT.RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   handler.cfg.JWT.RefreshCookieSecure,
		SameSite: handler.refreshCookieSameSite(),
	})
}

func (handler *Handler) clearRefreshCookie(w http.ResponseWriter) {
	handler.setRefreshCookie(w, "", -1)
}

// VerifyOwner checks whether a name/phone/password triple matches a
// reservation.
// @Summary Verify reservation ownership
// @Description Check the given credentials against existing reservations. Responds 200 either way.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body reservationDTO.VerifyOwnerRequest true "Verify Owner Request"
// @Success 200 {object} response.Data[reservationDTO.VerifyOwnerResponse] "Verification result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/auth/verify [post]
func (handler *Handler) VerifyOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyOwner")
	defer scope.End()

	req := reservationDTO.VerifyOwnerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.reservations.VerifyOwner(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify reservation owner")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// LoginWithKey checks a password against the configured login keys.
// @Summary Login with a shared key
// @Description Authorize a frontend session against the configured key allowlist.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginKeyRequest true "Login Key Request"
// @Success 200 {object} response.Data[dto.LoginKeyResponse] "Authorized"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/auth/login [post]
func (handler *Handler) LoginWithKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginWithKey")
	defer scope.End()

	req := dto.LoginKeyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.LoginWithKey(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("login with key rejected")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyPhone exchanges a registered admin phone for a token pair.
// @Summary Admin phone verification
// @Description Issue an access token for a registered admin phone. The refresh token is set as an HttpOnly cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyPhoneRequest true "Verify Phone Request"
// @Success 200 {object} response.Data[dto.VerifyPhoneResponse] "Tokens issued"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auth/verify-phone [post]
func (handler *Handler) VerifyPhone(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPhone")
	defer scope.End()

	req := dto.VerifyPhoneRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyPhone(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("phone verification rejected")

		response.WithError(w, err)

		return
	}

	handler.setRefreshCookie(w, res.RefreshToken, handler.cfg.JWT.RefreshExpireMin*60)

	scope.AddEvent("Admin authenticated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Refresh issues a new access token from the refresh cookie.
// @Summary Refresh access token
// @Description Exchange the refresh cookie for a fresh access token. A nearly expired refresh token is renewed along the way.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.RefreshResponse] "Token refreshed"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auth/refresh [post]
func (handler *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Refresh")
	defer scope.End()

	cookie, err := r.Cookie(handler.cfg.JWT.RefreshCookieName)
	if err != nil || cookie.Value == "" {
		err := failure.Unauthorized("missing refresh token")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Refresh(ctx, cookie.Value)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("token refresh rejected")

		response.WithError(w, err)

		return
	}

	if res.RefreshRenewed {
		handler.setRefreshCookie(w, res.RefreshToken, int(res.RefreshExpiresIn))
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Logout drops the admin session and clears the refresh cookie.
// @Summary Logout
// @Description Revoke the server-side session and clear the refresh cookie. Always responds 200.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Message "Logged out"
// @Router /v1/admin/auth/logout [post]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	// Best effort, a missing or broken token still clears the cookie.
	if tokenString, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization)); err == nil {
		_ = handler.service.Logout(ctx, tokenString)
	}

	handler.clearRefreshCookie(w)

	response.WithMessage(w, http.StatusOK, "logged out")
}

// Me returns the authenticated admin's profile.
// @Summary Current admin
// @Description Return the admin identified by the access token.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.MeResponse] "Current admin"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	res, err := handler.service.CurrentAdmin(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to resolve current admin")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
