package dto

import (
	"net/url"
	"strings"

	"skyline/internal/domains/room/model"
	"skyline/shared"
	gDto "skyline/shared/dto"
	gModel "skyline/shared/model"
	"skyline/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	QueryType         = "type"
	QueryAvailability = "availability"
	QueryFeatured     = "featured"
	QueryMinPrice     = "minPrice"
	QueryMaxPrice     = "maxPrice"

	FeaturedLimit = 5
)

type CreateRoomRequest struct {
	Name         string      `json:"name"         validate:"required,max=100"`
	Type         *model.Type `json:"type"         validate:"omitempty,enum"         swaggertype:"string" enums:"Single,Double,Suite,Deluxe,Presidential"`
	Description  string      `json:"description"  validate:"required,max=500"`
	Price        *float64    `json:"price"        validate:"required,gte=0"`
	Capacity     int         `json:"capacity"     validate:"required,min=1,max=10"`
	Size         float64     `json:"size"         validate:"required,gte=10"`
	Image        string      `json:"image"        validate:"omitempty,url"`
	Amenities    []string    `json:"amenities"    validate:"omitempty,dive,required"`
	Availability *bool       `json:"availability"`
	Featured     *bool       `json:"featured"`
	Rating       *float64    `json:"rating"       validate:"omitempty,gte=1,lte=5"`
}

func (c *CreateRoomRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	room := model.Room{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Type:         model.TypeSingle,
		Description:  c.Description,
		Price:        *c.Price,
		Capacity:     c.Capacity,
		Size:         c.Size,
		Image:        model.DefaultImage,
		Amenities:    pq.StringArray{},
		Availability: true,
		Rating:       model.DefaultRating,
		Metadata:     gModel.NewMetadata(timezone.Now(), user),
	}

	if c.Type != nil {
		room.Type = *c.Type
	}

	if c.Image != "" {
		room.Image = c.Image
	}

	if c.Amenities != nil {
		room.Amenities = c.Amenities
	}

	if c.Availability != nil {
		room.Availability = *c.Availability
	}

	if c.Featured != nil {
		room.Featured = *c.Featured
	}

	if c.Rating != nil {
		room.Rating = *c.Rating
	}

	return room
}

// UpdateRoomRequest only writes the fields present in the body.
type UpdateRoomRequest struct {
	Name         string         `db:"name"         json:"name"         validate:"omitempty,max=100"`
	Type         *model.Type    `db:"type"         json:"type"         validate:"omitempty,enum"     swaggertype:"string"`
	Description  string         `db:"description"  json:"description"  validate:"omitempty,max=500"`
	Price        *float64       `db:"price"        json:"price"        validate:"omitempty,gte=0"`
	Capacity     *int           `db:"capacity"     json:"capacity"     validate:"omitempty,min=1,max=10"`
	Size         *float64       `db:"size"         json:"size"         validate:"omitempty,gte=10"`
	Image        string         `db:"image"        json:"image"        validate:"omitempty,url"`
	Amenities    pq.StringArray `db:"amenities"    json:"amenities"    validate:"omitempty,dive,required" swaggertype:"array,string"`
	Availability *bool          `db:"availability" json:"availability"`
	Featured     *bool          `db:"featured"     json:"featured"`
	Rating       *float64       `db:"rating"       json:"rating"       validate:"omitempty,gte=1,lte=5"`
}

func (u *UpdateRoomRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
}

// RoomQuery holds the recognised list filters. Nil fields are not filtered on.
type RoomQuery struct {
	Type         *model.Type
	Availability *bool
	Featured     *bool
	MinPrice     *float64
	MaxPrice     *float64
}

func (q *RoomQuery) FromValues(values url.Values) (err error) {
	if q.Type, err = shared.ParseOptionalEnum[model.Type](QueryType, values.Get(QueryType)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.Availability, err = shared.ParseOptionalBool(QueryAvailability, values.Get(QueryAvailability)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.Featured, err = shared.ParseOptionalBool(QueryFeatured, values.Get(QueryFeatured)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.MinPrice, err = shared.ParseOptionalFloat(QueryMinPrice, values.Get(QueryMinPrice)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.MaxPrice, err = shared.ParseOptionalFloat(QueryMaxPrice, values.Get(QueryMaxPrice)); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (q *RoomQuery) ToFilter() gDto.FilterGroup {
	filter := gDto.And()

	if q.Type != nil {
		filter.Add(gDto.Filter{Field: model.FieldType, Value: *q.Type, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.Availability != nil {
		filter.Add(gDto.Filter{Field: model.FieldAvailability, Value: *q.Availability, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.Featured != nil {
		filter.Add(gDto.Filter{Field: model.FieldFeatured, Value: *q.Featured, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.MinPrice != nil {
		filter.Add(gDto.Filter{ArgName: "min_price", Field: model.FieldPrice, Value: *q.MinPrice, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	if q.MaxPrice != nil {
		filter.Add(gDto.Filter{ArgName: "max_price", Field: model.FieldPrice, Value: *q.MaxPrice, Operator: gDto.FilterOperatorLessEq, Table: model.TableName})
	}

	return filter
}

func FeaturedFilter() gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{Field: model.FieldFeatured, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldAvailability, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	)
}

type RoomResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Capacity     int      `json:"capacity"`
	Size         float64  `json:"size"`
	Image        string   `json:"image"`
	Amenities    []string `json:"amenities"`
	Availability bool     `json:"availability"`
	Featured     bool     `json:"featured"`
	Rating       float64  `json:"rating"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = string(model.Type)
	r.Description = model.Description
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Size = model.Size
	r.Image = model.Image
	r.Amenities = []string(model.Amenities)
	r.Availability = model.Availability
	r.Featured = model.Featured
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
