package admin

import (
	"net/http"

	"okshouse/infras/otel"
	"okshouse/internal/domains/admin/model/dto"
	"okshouse/internal/domains/admin/service"
	"okshouse/shared/constant"
	"okshouse/shared/validator"
	"okshouse/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the admin directory endpoints. The whole tree sits
// behind the admin auth guard.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/admins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAdmin)
		routerGroup.Get("/{name}", handler.GetAdminByName)
		routerGroup.Get("/exists/{name}", handler.AdminExists)
		routerGroup.Put("/{name}", handler.UpdateAdminByName)
	})
}

// CreateAdmin registers a new admin.
// @Summary Create an admin
// @Description Register an admin by name, optionally with a phone number.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateAdminRequest true "Create Admin Request"
// @Success 201 {object} response.Data[dto.AdminResponse] "Admin created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/admins [post]
// @Security BearerAuth
func (handler *Handler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAdmin")
	defer scope.End()

	req := dto.CreateAdminRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetAdminByName looks an admin up by name.
// @Summary Get an admin
// @Description Look up an admin by exact name.
// @Tags Admin
// @Produce json
// @Param name path string true "Admin name"
// @Success 200 {object} response.Data[dto.AdminResponse] "Admin"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/admins/{name} [get]
// @Security BearerAuth
func (handler *Handler) GetAdminByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminByName")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	res, err := handler.service.GetByName(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AdminExists reports whether an admin name is taken.
// @Summary Check admin existence
// @Description Report whether an admin with the given name exists.
// @Tags Admin
// @Produce json
// @Param name path string true "Admin name"
// @Success 200 {object} response.Data[dto.AdminExistsResponse] "Existence result"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/admins/exists/{name} [get]
// @Security BearerAuth
func (handler *Handler) AdminExists(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AdminExists")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	exists, err := handler.service.ExistsByName(ctx, name)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check admin existence")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dto.AdminExistsResponse{
		Name:   name,
		Exists: exists,
	})
}

// UpdateAdminByName updates an admin's name or phone.
// @Summary Update an admin
// @Description Update the admin identified by name.
// @Tags Admin
// @Accept json
// @Produce json
// @Param name path string true "Admin name"
// @Param request body dto.UpdateAdminRequest true "Update Admin Request"
// @Success 200 {object} response.Data[dto.AdminResponse] "Admin updated"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/admins/{name} [put]
// @Security BearerAuth
func (handler *Handler) UpdateAdminByName(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAdminByName")
	defer scope.End()

	name := chi.URLParam(r, constant.RequestParamName)

	req := dto.UpdateAdminRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateByName(ctx, name, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
