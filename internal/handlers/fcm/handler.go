package fcm

import (
	"net/http"

	"okshouse/infras/otel"
	"okshouse/internal/domains/fcm/model/dto"
	"okshouse/internal/domains/fcm/service"
	"okshouse/shared/constant"
	"okshouse/shared/validator"
	"okshouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.FCM
	otel    otel.Otel
}

func New(service service.FCM, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the push notification endpoints behind the admin guard.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/fcm", func(routerGroup chi.Router) {
		routerGroup.Post("/register-token", handler.RegisterToken)
		routerGroup.Delete("/unregister-token", handler.UnregisterToken)
		routerGroup.Post("/test-notification", handler.SendTestNotification)
	})
}

// RegisterToken stores a device token for admin notifications.
// @Summary Register a device token
// @Description Add a device token to the admin notification set.
// @Tags FCM
// @Accept json
// @Produce json
// @Param request body dto.RegisterTokenRequest true "Register Token Request"
// @Success 200 {object} response.Message "Token registered"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fcm/register-token [post]
// @Security BearerAuth
func (handler *Handler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterToken")
	defer scope.End()

	req := dto.RegisterTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RegisterToken(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register device token")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "token registered")
}

// UnregisterToken removes a device token.
// @Summary Unregister a device token
// @Description Remove a device token from the admin notification set.
// @Tags FCM
// @Accept json
// @Produce json
// @Param request body dto.UnregisterTokenRequest true "Unregister Token Request"
// @Success 200 {object} response.Message "Token unregistered"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fcm/unregister-token [delete]
// @Security BearerAuth
func (handler *Handler) UnregisterToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnregisterToken")
	defer scope.End()

	req := dto.UnregisterTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UnregisterToken(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unregister device token")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "token unregistered")
}

// SendTestNotification pushes a test message to all registered tokens.
// @Summary Send a test notification
// @Description Push a test notification to every registered device token.
// @Tags FCM
// @Accept json
// @Produce json
// @Param request body dto.TestNotificationRequest true "Test Notification Request"
// @Success 200 {object} response.Data[dto.NotificationResultResponse] "Delivery result"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/fcm/test-notification [post]
// @Security BearerAuth
func (handler *Handler) SendTestNotification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendTestNotification")
	defer scope.End()

	req := dto.TestNotificationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SendTest(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send test notification")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
