package dto

import (
	"database/sql"
	"errors"
	"time"

	"okshouse/internal/domains/reservation/model"
	"okshouse/shared/constant"
	gDto "okshouse/shared/dto"
	gModel "okshouse/shared/model"
	"okshouse/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	Phone     string `json:"phone"      validate:"required,max=20"`
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date"   validate:"required,date"`
	Duration  int    `json:"duration"   validate:"required,gt=0"`
	Password  string `json:"password"   validate:"omitempty,max=100"`
}

// ToModel builds a pending reservation. The stored password is the
// already-transformed value, or empty when the caller set none.
func (c *CreateReservationRequest) ToModel(storedPassword string) (model.Reservation, error) {
	startDate, endDate, err := ParseDateRange(c.StartDate, c.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Phone:     c.Phone,
		StartDate: startDate,
		EndDate:   endDate,
		Duration:  c.Duration,
		Password:  sql.NullString{String: storedPassword, Valid: storedPassword != ""},
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}, nil
}

// ParseDateRange parses a start/end date pair and rejects empty or
// inverted ranges. Ranges are half-open, the end date is not occupied.
func ParseDateRange(start, end string) (startDate, endDate time.Time, err error) {
	startDate, err = timezone.Parse(constant.DateFormat, start)
	if err != nil {
		return startDate, endDate, err
	}

	endDate, err = timezone.Parse(constant.DateFormat, end)
	if err != nil {
		return startDate, endDate, err
	}

	if !startDate.Before(endDate) {
		return startDate, endDate, errors.New("start_date must be before end_date")
	}

	return startDate, endDate, nil
}

type UpdateReservationRequest struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
	Name          string `json:"name"           validate:"required,max=100"`
	Phone         string `json:"phone"          validate:"required,max=20"`
	StartDate     string `json:"start_date"     validate:"required,date"`
	EndDate       string `json:"end_date"       validate:"required,date"`
	Duration      int    `json:"duration"       validate:"required,gt=0"`
}

type DeleteReservationRequest struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
	Name          string `json:"name"           validate:"required,max=100"`
	Phone         string `json:"phone"          validate:"required,max=20"`
	Password      string `json:"password"       validate:"required,max=100"`
}

type OwnerReservationsRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"required,max=20"`
}

type VerifyOwnerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Phone    string `json:"phone"    validate:"required,max=20"`
	Password string `json:"password" validate:"required,max=100"`
}

type VerifyOwnerResponse struct {
	ReservationID string `json:"reservation_id,omitempty"`
	Verified      bool   `json:"verified"`
}

type UpdateStatusRequest struct {
	Status    string `json:"status"     validate:"required,oneof=pending confirmed cancelled"`
	AdminName string `json:"admin_name" validate:"required,max=100"`
}

type ReservationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	ConfirmedBy string `json:"confirmed_by,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.StartDate = model.StartDate.Format(constant.DateFormat)
	r.EndDate = model.EndDate.Format(constant.DateFormat)
	r.Duration = model.Duration
	r.Status = model.Status
	r.ConfirmedBy = model.ConfirmedByName.String
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation) {
	r.TotalData = len(models)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
