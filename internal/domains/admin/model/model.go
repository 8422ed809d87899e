package model

import (
	"database/sql"

	"okshouse/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldAdminID = "admin_id"
	FieldName    = "name"
	FieldPhone   = "phone"
)

type Admin struct {
	AdminID string         `db:"admin_id"`
	Name    string         `db:"name"`
	Phone   sql.NullString `db:"phone"`
	model.Metadata
}
