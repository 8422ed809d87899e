package reservation

import (
	"net/http"
	"strconv"

	"okshouse/infras/otel"
	"okshouse/internal/domains/reservation/model/dto"
	"okshouse/internal/domains/reservation/service"
	"okshouse/shared/constant"
	"okshouse/shared/failure"
	"okshouse/shared/validator"
	"okshouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// UserRouter mounts the public reservation endpoints.
func (handler *Handler) UserRouter(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Put("/", handler.UpdateReservation)
		routerGroup.Delete("/", handler.DeleteReservation)
		routerGroup.Post("/user", handler.GetOwnReservations)
		routerGroup.Get("/monthly/{year}/{month}", handler.GetMonthlyReservations)
	})
}

// AdminRouter mounts the reservation endpoints that require an admin
// session.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Get("/monthly/{year}/{month}", handler.GetMonthlyReservationsAdmin)
		routerGroup.Patch("/{id}/status", handler.UpdateReservationStatus)
		routerGroup.Delete("/{id}", handler.DeleteReservationByAdmin)
	})
}

// parseYearMonth enforces a 4 digit year and a month between 1 and 12.
func parseYearMonth(r *http.Request) (year, month int, err error) {
	yearStr := chi.URLParam(r, constant.RequestParamYear)
	monthStr := chi.URLParam(r, constant.RequestParamMonth)

	if len(yearStr) != 4 {
		return 0, 0, failure.BadRequestFromString("year must be exactly 4 digits") //nolint:wrapcheck
	}

	year, err = strconv.Atoi(yearStr)
	if err != nil {
		return 0, 0, failure.BadRequestFromString("year must be exactly 4 digits") //nolint:wrapcheck
	}

	month, err = strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, failure.BadRequestFromString("month must be between 1 and 12") //nolint:wrapcheck
	}

	return year, month, nil
}

// CreateReservation books a date range.
// @Summary Create a reservation
// @Description Book the house for a date range. Dates already held by a pending or confirmed reservation are rejected.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/reservations [post]
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateReservation lets an owner move their reservation.
// @Summary Update a reservation
// @Description Change the dates of an existing reservation. The status is reset to pending.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/reservations [put]
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	req := dto.UpdateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteReservation lets an owner cancel their reservation.
// @Summary Delete a reservation
// @Description Delete a reservation after verifying name, phone, and password.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.DeleteReservationRequest true "Delete Reservation Request"
// @Success 204 "Reservation deleted"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/reservations [delete]
func (handler *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservation")
	defer scope.End()

	req := dto.DeleteReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation deleted successfully")

	response.WithNoContent(w)
}

// GetOwnReservations lists the caller's upcoming reservations.
// @Summary List own reservations
// @Description List upcoming reservations matching the given name and phone.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.OwnerReservationsRequest true "Owner Reservations Request"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/reservations/user [post]
func (handler *Handler) GetOwnReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnReservations")
	defer scope.End()

	req := dto.OwnerReservationsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByOwner(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations by owner")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetMonthlyReservations lists a month's visible reservations.
// @Summary List monthly reservations
// @Description List pending and confirmed reservations overlapping the given month.
// @Tags Reservation
// @Produce json
// @Param year path string true "Year (4 digits)"
// @Param month path string true "Month (1-12)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user/reservations/monthly/{year}/{month} [get]
func (handler *Handler) GetMonthlyReservations(w http.ResponseWriter, r *http.Request) {
	handler.getMonthly(w, r, false, "GetMonthlyReservations")
}

// GetMonthlyReservationsAdmin lists a month's reservations for admins.
// @Summary List monthly reservations (admin)
// @Description List every reservation overlapping the given month, including past and cancelled ones.
// @Tags Reservation
// @Produce json
// @Param year path string true "Year (4 digits)"
// @Param month path string true "Month (1-12)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "Reservations"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reservations/monthly/{year}/{month} [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlyReservationsAdmin(w http.ResponseWriter, r *http.Request) {
	handler.getMonthly(w, r, true, "GetMonthlyReservationsAdmin")
}

func (handler *Handler) getMonthly(w http.ResponseWriter, r *http.Request, includeAll bool, spanName string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+spanName)
	defer scope.End()

	year, month, err := parseYearMonth(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetMonthly(ctx, year, month, includeAll)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateReservationStatus confirms or denies a reservation.
// @Summary Update reservation status
// @Description Set the reservation status and record which admin did it.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation status updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReservationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservationStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation status updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteReservationByAdmin removes a reservation without owner checks.
// @Summary Delete a reservation (admin)
// @Description Delete any reservation by id.
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 204 "Reservation deleted"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/reservations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReservationByAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReservationByAdmin")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteByAdmin(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete reservation")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation deleted successfully")

	response.WithNoContent(w)
}
