package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"okshouse/config"
	"okshouse/infras/otel"
	adminService "okshouse/internal/domains/admin/service"
	fcmService "okshouse/internal/domains/fcm/service"
	"okshouse/internal/domains/reservation/model"
	"okshouse/internal/domains/reservation/model/dto"
	"okshouse/internal/domains/reservation/repository"
	"okshouse/shared"
	"okshouse/shared/cache"
	"okshouse/shared/constant"
	gDto "okshouse/shared/dto"
	"okshouse/shared/failure"
	"okshouse/shared/password"
	"okshouse/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheMonthly = "reservation:monthly"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetMonthly(ctx context.Context, year, month int, includeAll bool) (dto.GetReservationsResponse, error)
	GetByOwner(ctx context.Context, req dto.OwnerReservationsRequest) (dto.GetReservationsResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest) (dto.ReservationResponse, error)
	Delete(ctx context.Context, req dto.DeleteReservationRequest) error
	VerifyOwner(ctx context.Context, req dto.VerifyOwnerRequest) (dto.VerifyOwnerResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.ReservationResponse, error)
	DeleteByAdmin(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Reservation
	admins   adminService.Admin
	notifier fcmService.FCM
	codec    password.Codec
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Reservation,
	admins adminService.Admin,
	notifier fcmService.FCM,
	codec password.Codec,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		admins:   admins,
		notifier: notifier,
		codec:    codec,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// overlapFilter matches reservations in the given statuses whose
// half-open [start_date, end_date) range overlaps [start, end).
func overlapFilter(start, end time.Time, statuses []string, excludeID string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldStatus,
			ArgName:  "overlap_statuses",
			Operator: gDto.FilterOperatorIn,
			Value:    statuses,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStartDate,
			ArgName:  "overlap_end",
			Operator: gDto.FilterOperatorLess,
			Value:    end,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldEndDate,
			ArgName:  "overlap_start",
			Operator: gDto.FilterOperatorGreater,
			Value:    start,
			Table:    model.TableName,
		},
	}

	if excludeID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			ArgName:  "exclude_id",
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters}
}

// monthRange returns the first day of the month and the first day of
// the following month in the application timezone.
func monthRange(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.GetLocation())

	return first, first.AddDate(0, 1, 0)
}

func sortByStartDate() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.TableName + "." + model.FieldStartDate,
		SortDir: "ASC",
	}
}

// isAvailable reports whether [start, end) is free of pending and
// confirmed reservations. There is no lock between this check and the
// following insert, so two racing creates can both pass. The unique
// range constraint was left out on purpose to keep the historical
// behavior of the system this replaces.
func (s *serviceImpl) isAvailable(ctx context.Context, start, end time.Time, excludeID string) (bool, error) {
	occupied, err := s.repo.Exist(ctx, overlapFilter(start, end, model.ActiveStatuses(), excludeID))
	if err != nil {
		return false, fmt.Errorf("failed to check availability: %w", err)
	}

	return !occupied, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	storedPassword := ""
	if req.Password != "" {
		storedPassword, err = s.codec.Encrypt(req.Password)
		if err != nil {
			log.Error().Err(err).Msg("failed to transform reservation password")

			return res, fmt.Errorf("failed to transform reservation password: %w", err)
		}
	}

	reservation, err := req.ToModel(storedPassword)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	available, err := s.isAvailable(ctx, reservation.StartDate, reservation.EndDate, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, err
	}

	if !available {
		return res, failure.ErrDateConflict
	}

	// Cancelled rows holding the same dates are dead weight, drop them
	// so the new reservation takes their place.
	if err = s.repo.Delete(ctx, overlapFilter(reservation.StartDate, reservation.EndDate, []string{model.StatusCancelled}, "")); err != nil {
		log.Error().Err(err).Msg("failed to clear cancelled reservations")

		return res, fmt.Errorf("failed to clear cancelled reservations: %w", err)
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheMonthly)

		body := fmt.Sprintf("%s booked %s to %s", reservation.Name, req.StartDate, req.EndDate)
		if _, err := s.notifier.NotifyAdmins(c, "New reservation", body, map[string]string{
			"type":           "reservation_created",
			"reservation_id": reservation.ID,
		}); err != nil {
			log.Error().Err(err).Msg("failed to notify admins about new reservation")
		}
	}()

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetMonthly(ctx context.Context, year, month int, includeAll bool) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMonthlyReservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	firstOfMonth, firstOfNextMonth := monthRange(year, month)

	view := "admin"
	filters := []any{
		gDto.Filter{
			Field:    model.FieldStartDate,
			ArgName:  "month_end",
			Operator: gDto.FilterOperatorLess,
			Value:    firstOfNextMonth,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldEndDate,
			ArgName:  "month_start",
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    firstOfMonth,
			Table:    model.TableName,
		},
	}

	if !includeAll {
		// Public callers only see upcoming pending/confirmed rows.
		today := timezone.Today()
		view = "user:" + today.Format(constant.DateFormat)

		filters = append(filters,
			gDto.Filter{
				Field:    model.FieldStatus,
				ArgName:  "statuses",
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses(),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				ArgName:  "today",
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    today,
				Table:    model.TableName,
			},
		)
	}

	cacheKey := shared.BuildCacheKey(cacheMonthly, fmt.Sprintf("%04d-%02d", year, month), view)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for monthly reservations")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, sortByStartDate(), gDto.FilterGroup{Filters: filters})
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly reservations")

		return res, fmt.Errorf("failed to get monthly reservations: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save monthly reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) ownerFilter(name, phone string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPhone,
				Operator: gDto.FilterOperatorEq,
				Value:    phone,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				ArgName:  "statuses",
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses(),
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetByOwner(ctx context.Context, req dto.OwnerReservationsRequest) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetReservationsByOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := s.ownerFilter(req.Name, req.Phone)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldEndDate,
		ArgName:  "today",
		Operator: gDto.FilterOperatorGreaterEq,
		Value:    timezone.Today(),
		Table:    model.TableName,
	})

	models, err := s.repo.GetAll(ctx, sortByStartDate(), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations by owner")

		return res, fmt.Errorf("failed to get reservations by owner: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == "" {
		return reservation, failure.NotFound("reservation not found") //nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, req.ReservationID)
	if err != nil {
		return res, err
	}

	if reservation.Name != req.Name || reservation.Phone != req.Phone {
		return res, failure.ErrUnauthorizedReservation
	}

	startDate, endDate, err := dto.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	available, err := s.isAvailable(ctx, startDate, endDate, reservation.ID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check availability")

		return res, err
	}

	if !available {
		return res, failure.ErrDateConflict
	}

	// Any owner edit restarts the confirmation flow.
	updatedFields := map[string]any{
		model.FieldStartDate:    startDate,
		model.FieldEndDate:      endDate,
		model.FieldDuration:     req.Duration,
		model.FieldStatus:       model.StatusPending,
		model.FieldConfirmedBy:  nil,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	updated, err := s.getByID(ctx, reservation.ID)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheMonthly)

		body := fmt.Sprintf("%s moved a reservation to %s - %s", updated.Name, req.StartDate, req.EndDate)
		if _, err := s.notifier.NotifyAdmins(c, "Reservation updated", body, map[string]string{
			"type":           "reservation_updated",
			"reservation_id": updated.ID,
		}); err != nil {
			log.Error().Err(err).Msg("failed to notify admins about reservation update")
		}
	}()

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, req dto.DeleteReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(req.ReservationID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	// A missing row and a failed owner match are indistinguishable to
	// the caller, both come back unauthorized.
	if reservation.ID == "" || reservation.Name != req.Name || reservation.Phone != req.Phone {
		return failure.ErrUnauthorizedReservation
	}

	if !reservation.Password.Valid {
		return failure.ErrUnauthorizedReservation
	}

	if err = s.codec.Verify(req.Password, reservation.Password.String); err != nil {
		return failure.ErrUnauthorizedReservation
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheMonthly)
	}()

	return nil
}

// VerifyOwner scans the caller's own reservations and matches the
// given password against each stored value. Expected cardinality per
// person is tiny, the linear scan is fine.
func (s *serviceImpl) VerifyOwner(ctx context.Context, req dto.VerifyOwnerRequest) (res dto.VerifyOwnerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyOwner")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, sortByStartDate(), s.ownerFilter(req.Name, req.Phone))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations for verification")

		return res, fmt.Errorf("failed to get reservations for verification: %w", err)
	}

	for _, reservation := range models {
		if !reservation.Password.Valid {
			continue
		}

		if s.codec.Verify(req.Password, reservation.Password.String) == nil {
			return dto.VerifyOwnerResponse{ReservationID: reservation.ID, Verified: true}, nil
		}
	}

	return dto.VerifyOwnerResponse{Verified: false}, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateReservationStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Resolve the reservation before touching the admin table so a bad
	// id cannot create an admin as a side effect.
	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	admin, err := s.admins.GetOrCreateByName(ctx, req.AdminName)
	if err != nil {
		return res, err
	}

	updatedFields := map[string]any{
		model.FieldStatus:       req.Status,
		model.FieldConfirmedBy:  admin.AdminID,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return res, fmt.Errorf("failed to update reservation status: %w", err)
	}

	updated, err := s.getByID(ctx, reservation.ID)
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheMonthly)

		body := fmt.Sprintf("%s marked %s's reservation as %s", admin.Name, updated.Name, req.Status)
		if _, err := s.notifier.NotifyAdmins(c, "Reservation "+req.Status, body, map[string]string{
			"type":           "reservation_status",
			"reservation_id": updated.ID,
			"status":         req.Status,
		}); err != nil {
			log.Error().Err(err).Msg("failed to notify admins about status change")
		}
	}()

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) DeleteByAdmin(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteReservationByAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(reservation.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheMonthly)
	}()

	return nil
}
