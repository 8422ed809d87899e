package model

import (
	"database/sql"
	"time"

	"okshouse/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	AdminTableName = "admins"

	FieldID          = "id"
	FieldName        = "name"
	FieldPhone       = "phone"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldDuration    = "duration"
	FieldPassword    = "password"
	FieldStatus      = "status"
	FieldConfirmedBy = "confirmed_by"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses returns the statuses that occupy dates. Cancelled
// reservations never block availability.
func ActiveStatuses() []string {
	return []string{StatusPending, StatusConfirmed}
}

type Reservation struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Phone           string         `db:"phone"`
	StartDate       time.Time      `db:"start_date"`
	EndDate         time.Time      `db:"end_date"`
	Duration        int            `db:"duration"`
	Password        sql.NullString `db:"password"`
	Status          string         `db:"status"`
	ConfirmedBy     sql.NullString `db:"confirmed_by"`
	ConfirmedByName sql.NullString `db:"confirmed_by_name" table:"admins" column:"name"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "LEFT JOIN admins ON admins.admin_id = reservations.confirmed_by"
}
