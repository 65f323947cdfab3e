package model

import "skyline/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID        = "id"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldAvailable = "available"

	DefaultIcon           = "star"
	DefaultOperatingHours = "24/7"
)

type Category string

const (
	CategoryRecreation Category = "Recreation"
	CategoryServices   Category = "Services"
	CategoryDining     Category = "Dining"
	CategoryBusiness   Category = "Business"
	CategoryOther      Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryRecreation, CategoryServices, CategoryDining, CategoryBusiness, CategoryOther:
		return true
	default:
		return false
	}
}

type Facility struct {
	ID             string   `db:"id"`
	Name           string   `db:"name"`
	Description    string   `db:"description"`
	Icon           string   `db:"icon"`
	Available      bool     `db:"available"`
	Category       Category `db:"category"`
	OperatingHours string   `db:"operating_hours"`
	model.Metadata
}
