package dto

import (
	"skyline/shared/constant"
	"skyline/shared/model"
	"skyline/shared/timezone"
	"time"
)

// Metadata is the timestamp pair carried by every resource response.
type Metadata struct {
	CreatedAt  string `json:"createdAt" example:"2024-06-01T09:00:00Z"`
	ModifiedAt string `json:"updatedAt" example:"2024-06-01T09:00:00Z"`
}

func (m *Metadata) FromModel(source model.Metadata) {
	*m = Metadata{
		CreatedAt:  timestamp(source.CreatedAt),
		ModifiedAt: timestamp(source.ModifiedAt),
	}
}

func timestamp(t time.Time) string {
	return timezone.Format(t, constant.DateFormat)
}
