package model

import (
	"skyline/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldName         = "name"
	FieldType         = "type"
	FieldPrice        = "price"
	FieldImage        = "image"
	FieldAvailability = "availability"
	FieldFeatured     = "featured"
	FieldRating       = "rating"
	FieldCreatedAt    = "created_at"

	DefaultImage  = "https://via.placeholder.com/400x300?text=Hotel+Room"
	DefaultRating = 4.5
)

type Type string

const (
	TypeSingle       Type = "Single"
	TypeDouble       Type = "Double"
	TypeSuite        Type = "Suite"
	TypeDeluxe       Type = "Deluxe"
	TypePresidential Type = "Presidential"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSingle, TypeDouble, TypeSuite, TypeDeluxe, TypePresidential:
		return true
	default:
		return false
	}
}

type Room struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Type         Type           `db:"type"`
	Description  string         `db:"description"`
	Price        float64        `db:"price"`
	Capacity     int            `db:"capacity"`
	Size         float64        `db:"size"`
	Image        string         `db:"image"`
	Amenities    pq.StringArray `db:"amenities"`
	Availability bool           `db:"availability"`
	Featured     bool           `db:"featured"`
	Rating       float64        `db:"rating"`
	model.Metadata
}
