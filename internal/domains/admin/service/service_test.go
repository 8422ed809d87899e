package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"okshouse/infras/otel/mocks"
	adminMocks "okshouse/internal/domains/admin/mocks"
	"okshouse/internal/domains/admin/model"
	"okshouse/internal/domains/admin/model/dto"
	"okshouse/internal/domains/admin/service"
	"okshouse/shared/failure"
)

func newService(t *testing.T) (*adminMocks.MockAdmin, service.Admin) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := adminMocks.NewMockAdmin(ctrl)

	return mockRepo, service.New(mockRepo, mocks.NewOtel())
}

func uniqueViolation() error {
	return &pq.Error{Code: "23505"}
}

func TestAdminService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateAdminRequest
		setupMock func(repo *adminMocks.MockAdmin)
		wantErr   error
	}{
		{
			name: "successful creation",
			req:  dto.CreateAdminRequest{Name: "Ana", Phone: "08123456789"},
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, admin model.Admin) error {
						assert.Equal(t, "Ana", admin.Name)
						assert.True(t, admin.Phone.Valid)
						assert.NotEmpty(t, admin.AdminID)

						return nil
					})
			},
		},
		{
			name: "name already taken",
			req:  dto.CreateAdminRequest{Name: "Ana"},
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: failure.ErrDuplicateAdminName,
		},
		{
			name: "lost race surfaces as duplicate",
			req:  dto.CreateAdminRequest{Name: "Ana"},
			setupMock: func(repo *adminMocks.MockAdmin) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueViolation())
			},
			wantErr: failure.ErrDuplicateAdminName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, svc := newService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ana", res.Name)
			}
		})
	}
}

func TestAdminService_GetByName(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mockRepo, svc := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Admin{AdminID: "admin-1", Name: "Ana"}, nil)

		res, err := svc.GetByName(context.Background(), "Ana")

		assert.NoError(t, err)
		assert.Equal(t, "admin-1", res.AdminID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo, svc := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)

		_, err := svc.GetByName(context.Background(), "Nobody")

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestAdminService_UpdateByName(t *testing.T) {
	t.Run("unknown admin", func(t *testing.T) {
		mockRepo, svc := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil)

		_, err := svc.UpdateByName(context.Background(), "Nobody", dto.UpdateAdminRequest{Name: "New"})

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("rename collides with existing admin", func(t *testing.T) {
		mockRepo, svc := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{AdminID: "admin-1", Name: "Ana"}, nil)
		mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(uniqueViolation())

		_, err := svc.UpdateByName(context.Background(), "Ana", dto.UpdateAdminRequest{Name: "Budi"})

		assert.ErrorIs(t, err, failure.ErrDuplicateAdminName)
	})

	t.Run("successful update re-reads the row", func(t *testing.T) {
		mockRepo, svc := newService(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{AdminID: "admin-1", Name: "Ana"}, nil),
			mockRepo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Equal(t, "Renamed", fields[model.FieldName])

					return nil
				}),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{AdminID: "admin-1", Name: "Renamed"}, nil),
		)

		res, err := svc.UpdateByName(context.Background(), "Ana", dto.UpdateAdminRequest{Name: "Renamed"})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", res.Name)
	})
}

func TestAdminService_GetOrCreateByName(t *testing.T) {
	t.Run("existing admin is returned as is", func(t *testing.T) {
		mockRepo, svc := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Admin{AdminID: "admin-1", Name: "Ana"}, nil)

		admin, err := svc.GetOrCreateByName(context.Background(), "Ana")

		assert.NoError(t, err)
		assert.Equal(t, "admin-1", admin.AdminID)
	})

	t.Run("missing admin is created", func(t *testing.T) {
		mockRepo, svc := newService(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil),
			mockRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, admin model.Admin) error {
					assert.Equal(t, "Ana", admin.Name)
					assert.NotEmpty(t, admin.AdminID)

					return nil
				}),
		)

		admin, err := svc.GetOrCreateByName(context.Background(), "Ana")

		assert.NoError(t, err)
		assert.Equal(t, "Ana", admin.Name)
	})

	t.Run("lost creation race falls back to the winner", func(t *testing.T) {
		mockRepo, svc := newService(t)

		winner := model.Admin{AdminID: "admin-2", Name: "Ana"}

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, nil),
			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(uniqueViolation()),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(winner, nil),
		)

		admin, err := svc.GetOrCreateByName(context.Background(), "Ana")

		assert.NoError(t, err)
		assert.Equal(t, winner.AdminID, admin.AdminID)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		mockRepo, svc := newService(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{}, errors.New("database error"))

		_, err := svc.GetOrCreateByName(context.Background(), "Ana")

		assert.Error(t, err)
	})
}
