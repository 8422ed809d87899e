package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"okshouse/infras/otel"
	"okshouse/internal/domains/admin/model"
	"okshouse/internal/domains/admin/model/dto"
	"okshouse/internal/domains/admin/repository"
	"okshouse/shared"
	"okshouse/shared/constant"
	gDto "okshouse/shared/dto"
	"okshouse/shared/failure"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Admin interface {
	Create(ctx context.Context, req dto.CreateAdminRequest) (dto.AdminResponse, error)
	GetByName(ctx context.Context, name string) (dto.AdminResponse, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	UpdateByName(ctx context.Context, name string, req dto.UpdateAdminRequest) (dto.AdminResponse, error)
	GetOrCreateByName(ctx context.Context, name string) (model.Admin, error)
	GetByPhone(ctx context.Context, phone string) (model.Admin, error)
	GetByID(ctx context.Context, id string) (model.Admin, error)
}

type serviceImpl struct {
	repo repository.Admin
	otel otel.Otel
}

func New(repo repository.Admin, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func filterByName(name string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdminRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, filterByName(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return res, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	if exists {
		return res, failure.ErrDuplicateAdminName
	}

	admin := req.ToModel()

	if err = s.repo.Insert(ctx, admin); err != nil {
		// The exists check above races with concurrent inserts, the
		// unique index is the authority.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.ErrDuplicateAdminName
		}

		log.Error().Err(err).Msg("failed to create admin")

		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) GetByName(ctx context.Context, name string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAdminByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, filterByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.AdminID == "" {
		return res, failure.NotFound("admin not found")
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) ExistsByName(ctx context.Context, name string) (exists bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdminExistsByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err = s.repo.Exist(ctx, filterByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if admin exists")

		return false, fmt.Errorf("failed to check if admin exists: %w", err)
	}

	return exists, nil
}

func (s *serviceImpl) UpdateByName(ctx context.Context, name string, req dto.UpdateAdminRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAdminByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, filterByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.AdminID == "" {
		return res, failure.NotFound("admin not found")
	}

	updatedFields := shared.TransformFields(req)

	if err = s.repo.Update(ctx, updatedFields, filterByName(name)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.ErrDuplicateAdminName
		}

		log.Error().Err(err).Msg("failed to update admin")

		return res, fmt.Errorf("failed to update admin: %w", err)
	}

	return s.getResponseByID(ctx, admin.AdminID)
}

// getResponseByID re-reads the admin after a mutation so the response
// reflects what was stored.
func (s *serviceImpl) getResponseByID(ctx context.Context, id string) (res dto.AdminResponse, err error) {
	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) GetOrCreateByName(ctx context.Context, name string) (admin model.Admin, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrCreateAdminByName")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err = s.repo.Get(ctx, filterByName(name))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return admin, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.AdminID != "" {
		return admin, nil
	}

	req := dto.CreateAdminRequest{Name: name}
	admin = req.ToModel()

	if err = s.repo.Insert(ctx, admin); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return s.repo.Get(ctx, filterByName(name))
		}

		log.Error().Err(err).Msg("failed to create admin")

		return admin, fmt.Errorf("failed to create admin: %w", err)
	}

	return admin, nil
}

func (s *serviceImpl) GetByPhone(ctx context.Context, phone string) (admin model.Admin, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAdminByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    phone,
				Table:    model.TableName,
			},
		},
	}

	admin, err = s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin by phone")

		return admin, fmt.Errorf("failed to get admin by phone: %w", err)
	}

	return admin, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, id string) (admin model.Admin, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAdminByID")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldAdminID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin by id")

		return admin, fmt.Errorf("failed to get admin by id: %w", err)
	}

	return admin, nil
}
