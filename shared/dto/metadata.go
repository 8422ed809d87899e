package dto

import (
	"okshouse/shared/constant"
	"okshouse/shared/model"
	"okshouse/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateTimeFormat)
	m.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateTimeFormat)
}
