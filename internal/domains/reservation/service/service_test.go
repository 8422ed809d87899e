package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"okshouse/config"
	"okshouse/infras/otel/mocks"
	adminModel "okshouse/internal/domains/admin/model"
	adminMocks "okshouse/internal/domains/admin/service/mocks"
	fcmDto "okshouse/internal/domains/fcm/model/dto"
	fcmMocks "okshouse/internal/domains/fcm/service/mocks"
	reservationMocks "okshouse/internal/domains/reservation/mocks"
	"okshouse/internal/domains/reservation/model"
	"okshouse/internal/domains/reservation/model/dto"
	"okshouse/internal/domains/reservation/service"
	cacheMocks "okshouse/shared/cache/mocks"
	gDto "okshouse/shared/dto"
	"okshouse/shared/failure"
	"okshouse/shared/password"
	"okshouse/shared/timezone"
)

type serviceFixture struct {
	repo     *reservationMocks.MockReservation
	admins   *adminMocks.MockAdmin
	notifier *fcmMocks.MockFCM
	cache    *cacheMocks.MockRedisCache
	codec    password.Codec
	svc      service.Reservation
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Crypto.Scheme = password.SchemeBcrypt

	codec, err := password.New(cfg)
	require.NoError(t, err)

	f := &serviceFixture{
		repo:     reservationMocks.NewMockReservation(ctrl),
		admins:   adminMocks.NewMockAdmin(ctrl),
		notifier: fcmMocks.NewMockFCM(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		codec:    codec,
	}

	// Cache invalidation and admin notifications run async after
	// mutations, allow them without pinning counts.
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().
		NotifyAdmins(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fcmDto.NotificationResultResponse{}, nil).
		AnyTimes()

	f.svc = service.New(f.repo, f.admins, f.notifier, codec, cfg, f.cache, mocks.NewOtel())

	return f
}

func storedReservation(t *testing.T, codec password.Codec, plainPassword string) model.Reservation {
	t.Helper()

	reservation := model.Reservation{
		ID:        "b7a1c7de-8c5f-4a3c-9b79-1a2b3c4d5e6f",
		Name:      "Budi",
		Phone:     "08123456789",
		StartDate: mustDate(t, "2026-09-10"),
		EndDate:   mustDate(t, "2026-09-12"),
		Duration:  2,
		Status:    model.StatusPending,
	}

	if plainPassword != "" {
		stored, err := codec.Encrypt(plainPassword)
		require.NoError(t, err)

		reservation.Password = sql.NullString{String: stored, Valid: true}
	}

	return reservation
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := timezone.Parse("2006-01-02", value)
	require.NoError(t, err)

	return parsed
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func(f *serviceFixture)
		wantErr   error
	}{
		{
			name: "successful creation",
			req: dto.CreateReservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Duration:  2,
				Password:  "secret",
			},
			setupMock: func(f *serviceFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
						assert.Equal(t, model.StatusPending, reservation.Status)
						assert.True(t, reservation.Password.Valid)
						assert.NotEqual(t, "secret", reservation.Password.String)

						return nil
					})
			},
		},
		{
			name: "dates already booked",
			req: dto.CreateReservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-12",
				Duration:  2,
			},
			setupMock: func(f *serviceFixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: failure.ErrDateConflict,
		},
		{
			name: "inverted date range",
			req: dto.CreateReservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "2026-09-12",
				EndDate:   "2026-09-10",
				Duration:  2,
			},
			setupMock: func(f *serviceFixture) {},
		},
		{
			name: "start equals end",
			req: dto.CreateReservationRequest{
				Name:      "Budi",
				Phone:     "08123456789",
				StartDate: "2026-09-10",
				EndDate:   "2026-09-10",
				Duration:  1,
			},
			setupMock: func(f *serviceFixture) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.name == "successful creation":
				assert.NoError(t, err)
				assert.Equal(t, "2026-09-10", res.StartDate)
				assert.Equal(t, "2026-09-12", res.EndDate)
				assert.Equal(t, model.StatusPending, res.Status)
				assert.NotEmpty(t, res.ID)
			default:
				assert.Equal(t, 400, failure.GetCode(err))
			}
		})
	}
}

func TestReservationService_GetMonthly(t *testing.T) {
	t.Run("admin view queries the full month window", func(t *testing.T) {
		f := newServiceFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{storedReservation(t, f.codec, "")}, nil)

		res, err := f.svc.GetMonthly(context.Background(), 2026, 9, true)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Len(t, res.Reservations, 1)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newServiceFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				cached, ok := value.(*dto.GetReservationsResponse)
				require.True(t, ok)

				cached.TotalData = 3

				return nil
			})

		res, err := f.svc.GetMonthly(context.Background(), 2026, 9, false)

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		f := newServiceFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := f.svc.GetMonthly(context.Background(), 2026, 9, false)

		assert.Error(t, err)
	})
}

func TestReservationService_MonthWindow(t *testing.T) {
	f := newServiceFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	var window gDto.FilterGroup

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Reservation, error) {
			window = filter

			return nil, nil
		})

	_, err := f.svc.GetMonthly(context.Background(), 2024, 8, true)
	require.NoError(t, err)

	clause, args := window.GetWhereClause()

	assert.Contains(t, clause, "reservations.start_date < :month_end")
	assert.Contains(t, clause, "reservations.end_date >= :month_start")

	monthStart, ok := args["month_start"].(time.Time)
	require.True(t, ok)

	monthEnd, ok := args["month_end"].(time.Time)
	require.True(t, ok)

	assert.Equal(t, time.Date(2024, 8, 1, 0, 0, 0, 0, timezone.GetLocation()), monthStart)
	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, timezone.GetLocation()), monthEnd)

	inWindow := func(start, end string) bool {
		return mustDate(t, start).Before(monthEnd) && !mustDate(t, end).Before(monthStart)
	}

	assert.True(t, inWindow("2024-07-30", "2024-08-05"), "range spanning the whole month")
	assert.True(t, inWindow("2024-08-31", "2024-09-02"), "range starting in the month")
	assert.True(t, inWindow("2024-07-30", "2024-08-01"), "range ending in the month")
	assert.False(t, inWindow("2024-07-10", "2024-07-12"), "range entirely in the previous month")
}

func TestReservationService_AvailabilityBounds(t *testing.T) {
	f := newServiceFixture(t)

	req := dto.CreateReservationRequest{
		Name:      "Budi",
		Phone:     "08123456789",
		StartDate: "2026-09-12",
		EndDate:   "2026-09-14",
		Duration:  2,
	}

	var overlap gDto.FilterGroup

	f.repo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			overlap = filter

			return false, nil
		})
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	clause, args := overlap.GetWhereClause()

	// Strict comparisons keep the ranges half-open: a stay ending the
	// day a new one starts does not collide.
	assert.Contains(t, clause, "reservations.start_date < :overlap_end")
	assert.Contains(t, clause, "reservations.end_date > :overlap_start")

	overlapStart, ok := args["overlap_start"].(time.Time)
	require.True(t, ok)

	overlapEnd, ok := args["overlap_end"].(time.Time)
	require.True(t, ok)

	assert.Equal(t, mustDate(t, "2026-09-12"), overlapStart)
	assert.Equal(t, mustDate(t, "2026-09-14"), overlapEnd)

	adjacentEnd := mustDate(t, "2026-09-12")
	assert.False(t, adjacentEnd.After(overlapStart), "back-to-back ranges must stay available")
}

func TestReservationService_Update(t *testing.T) {
	req := dto.UpdateReservationRequest{
		ReservationID: "b7a1c7de-8c5f-4a3c-9b79-1a2b3c4d5e6f",
		Name:          "Budi",
		Phone:         "08123456789",
		StartDate:     "2026-09-15",
		EndDate:       "2026-09-17",
		Duration:      2,
	}

	t.Run("owner mismatch is rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		stored := storedReservation(t, f.codec, "")
		stored.Name = "Somebody Else"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		_, err := f.svc.Update(context.Background(), req)

		assert.ErrorIs(t, err, failure.ErrUnauthorizedReservation)
	})

	t.Run("new dates must be free", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReservation(t, f.codec, ""), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Update(context.Background(), req)

		assert.ErrorIs(t, err, failure.ErrDateConflict)
	})

	t.Run("successful update resets confirmation", func(t *testing.T) {
		f := newServiceFixture(t)

		stored := storedReservation(t, f.codec, "")
		stored.Status = model.StatusConfirmed
		stored.ConfirmedBy = sql.NullString{String: "some-admin-id", Valid: true}

		moved := storedReservation(t, f.codec, "")
		moved.StartDate = mustDate(t, "2026-09-15")
		moved.EndDate = mustDate(t, "2026-09-17")

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil),
			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Equal(t, model.StatusPending, fields[model.FieldStatus])
					assert.Nil(t, fields[model.FieldConfirmedBy])

					return nil
				}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(moved, nil),
		)

		res, err := f.svc.Update(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "2026-09-15", res.StartDate)
		assert.Equal(t, "2026-09-17", res.EndDate)
	})
}

func TestReservationService_Delete(t *testing.T) {
	req := dto.DeleteReservationRequest{
		ReservationID: "b7a1c7de-8c5f-4a3c-9b79-1a2b3c4d5e6f",
		Name:          "Budi",
		Phone:         "08123456789",
		Password:      "secret",
	}

	t.Run("unknown id looks like bad credentials", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.Delete(context.Background(), req)

		assert.ErrorIs(t, err, failure.ErrUnauthorizedReservation)
	})

	t.Run("wrong password leaves the reservation alone", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReservation(t, f.codec, "different"), nil)

		err := f.svc.Delete(context.Background(), req)

		assert.ErrorIs(t, err, failure.ErrUnauthorizedReservation)
	})

	t.Run("passwordless reservation cannot be deleted by owner", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReservation(t, f.codec, ""), nil)

		err := f.svc.Delete(context.Background(), req)

		assert.ErrorIs(t, err, failure.ErrUnauthorizedReservation)
	})

	t.Run("successful deletion", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedReservation(t, f.codec, "secret"), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestReservationService_VerifyOwner(t *testing.T) {
	req := dto.VerifyOwnerRequest{
		Name:     "Budi",
		Phone:    "08123456789",
		Password: "secret",
	}

	t.Run("matches the reservation holding the password", func(t *testing.T) {
		f := newServiceFixture(t)

		other := storedReservation(t, f.codec, "different")
		other.ID = "11111111-1111-1111-1111-111111111111"
		match := storedReservation(t, f.codec, "secret")

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{other, match}, nil)

		res, err := f.svc.VerifyOwner(context.Background(), req)

		assert.NoError(t, err)
		assert.True(t, res.Verified)
		assert.Equal(t, match.ID, res.ReservationID)
	})

	t.Run("no match responds unverified without error", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{storedReservation(t, f.codec, "different")}, nil)

		res, err := f.svc.VerifyOwner(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Verified)
		assert.Empty(t, res.ReservationID)
	})

	t.Run("passwordless reservations are skipped", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Reservation{storedReservation(t, f.codec, "")}, nil)

		res, err := f.svc.VerifyOwner(context.Background(), req)

		assert.NoError(t, err)
		assert.False(t, res.Verified)
	})
}

func TestReservationService_UpdateStatus(t *testing.T) {
	req := dto.UpdateStatusRequest{
		Status:    model.StatusConfirmed,
		AdminName: "Ana",
	}

	t.Run("unknown reservation creates no admin", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := f.svc.UpdateStatus(context.Background(), "missing-id", req)

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful confirmation records the admin", func(t *testing.T) {
		f := newServiceFixture(t)

		stored := storedReservation(t, f.codec, "")
		confirmed := storedReservation(t, f.codec, "")
		confirmed.Status = model.StatusConfirmed
		confirmed.ConfirmedByName = sql.NullString{String: "Ana", Valid: true}

		admin := adminModel.Admin{AdminID: "22222222-2222-2222-2222-222222222222", Name: "Ana"}

		gomock.InOrder(
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil),
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
					assert.Equal(t, admin.AdminID, fields[model.FieldConfirmedBy])

					return nil
				}),
			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil),
		)

		f.admins.EXPECT().GetOrCreateByName(gomock.Any(), "Ana").Return(admin, nil)

		res, err := f.svc.UpdateStatus(context.Background(), stored.ID, req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, "Ana", res.ConfirmedBy)
	})
}

func TestReservationService_DeleteByAdmin(t *testing.T) {
	t.Run("unknown reservation", func(t *testing.T) {
		f := newServiceFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.DeleteByAdmin(context.Background(), "missing-id")

		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("successful deletion", func(t *testing.T) {
		f := newServiceFixture(t)

		stored := storedReservation(t, f.codec, "")

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.DeleteByAdmin(context.Background(), stored.ID)

		assert.NoError(t, err)
	})
}
