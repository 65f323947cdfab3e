package dto

import (
	"net/url"
	"strings"

	"skyline/internal/domains/facility/model"
	"skyline/shared"
	gDto "skyline/shared/dto"
	gModel "skyline/shared/model"
	"skyline/shared/timezone"

	"github.com/google/uuid"
)

const (
	QueryCategory  = "category"
	QueryAvailable = "available"
)

type CreateFacilityRequest struct {
	Name           string          `json:"name"           validate:"required,max=100"`
	Description    string          `json:"description"    validate:"required,max=300"`
	Icon           string          `json:"icon"           validate:"omitempty,max=50"`
	Available      *bool           `json:"available"`
	Category       *model.Category `json:"category"       validate:"omitempty,enum" swaggertype:"string" enums:"Recreation,Services,Dining,Business,Other"`
	OperatingHours string          `json:"operatingHours" validate:"omitempty,max=100"`
}

func (c *CreateFacilityRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

func (c *CreateFacilityRequest) ToModel(user string) model.Facility {
	facility := model.Facility{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Description:    c.Description,
		Icon:           model.DefaultIcon,
		Available:      true,
		Category:       model.CategoryOther,
		OperatingHours: model.DefaultOperatingHours,
		Metadata:       gModel.NewMetadata(timezone.Now(), user),
	}

	if c.Icon != "" {
		facility.Icon = c.Icon
	}

	if c.Available != nil {
		facility.Available = *c.Available
	}

	if c.Category != nil {
		facility.Category = *c.Category
	}

	if c.OperatingHours != "" {
		facility.OperatingHours = c.OperatingHours
	}

	return facility
}

type UpdateFacilityRequest struct {
	Name           string          `db:"name"            json:"name"           validate:"omitempty,max=100"`
	Description    string          `db:"description"     json:"description"    validate:"omitempty,max=300"`
	Icon           string          `db:"icon"            json:"icon"           validate:"omitempty,max=50"`
	Available      *bool           `db:"available"       json:"available"`
	Category       *model.Category `db:"category"        json:"category"       validate:"omitempty,enum" swaggertype:"string"`
	OperatingHours string          `db:"operating_hours" json:"operatingHours" validate:"omitempty,max=100"`
}

func (u *UpdateFacilityRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
}

type FacilityQuery struct {
	Category  *model.Category
	Available *bool
}

func (q *FacilityQuery) FromValues(values url.Values) (err error) {
	if q.Category, err = shared.ParseOptionalEnum[model.Category](QueryCategory, values.Get(QueryCategory)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.Available, err = shared.ParseOptionalBool(QueryAvailable, values.Get(QueryAvailable)); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (q *FacilityQuery) ToFilter() gDto.FilterGroup {
	filter := gDto.And()

	if q.Category != nil {
		filter.Add(gDto.Filter{Field: model.FieldCategory, Value: *q.Category, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.Available != nil {
		filter.Add(gDto.Filter{Field: model.FieldAvailable, Value: *q.Available, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

type FacilityResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	Available      bool   `json:"available"`
	Category       string `json:"category"`
	OperatingHours string `json:"operatingHours"`
	gDto.Metadata
}

func (f *FacilityResponse) FromModel(model model.Facility) {
	f.ID = model.ID
	f.Name = model.Name
	f.Description = model.Description
	f.Icon = model.Icon
	f.Available = model.Available
	f.Category = string(model.Category)
	f.OperatingHours = model.OperatingHours
	f.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Facility) []FacilityResponse {
	res := make([]FacilityResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
