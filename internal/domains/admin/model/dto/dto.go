package dto

import (
	"database/sql"

	"okshouse/internal/domains/admin/model"
	gDto "okshouse/shared/dto"
	gModel "okshouse/shared/model"
	"okshouse/shared/timezone"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

func (c *CreateAdminRequest) ToModel() model.Admin {
	return model.Admin{
		AdminID: uuid.NewString(),
		Name:    c.Name,
		Phone:   sql.NullString{String: c.Phone, Valid: c.Phone != ""},
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateAdminRequest struct {
	Name  string `db:"name"  json:"name"  validate:"omitempty,max=100"`
	Phone string `db:"phone" json:"phone" validate:"omitempty,max=20"`
}

type AdminResponse struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(model model.Admin) {
	r.AdminID = model.AdminID
	r.Name = model.Name
	r.Phone = model.Phone.String
	r.Metadata.FromModel(model.Metadata)
}

type AdminExistsResponse struct {
	Name   string `json:"name"`
	Exists bool   `json:"exists"`
}
