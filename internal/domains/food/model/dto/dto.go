package dto

import (
	"net/url"
	"strings"

	"skyline/internal/domains/food/model"
	"skyline/shared"
	gDto "skyline/shared/dto"
	gModel "skyline/shared/model"
	"skyline/shared/timezone"

	"github.com/google/uuid"
)

const (
	QueryCategory     = "category"
	QueryCuisine      = "cuisine"
	QueryIsVegetarian = "isVegetarian"
	QueryAvailable    = "available"
)

type CreateFoodRequest struct {
	Name         string            `json:"name"         validate:"required,max=100"`
	Description  string            `json:"description"  validate:"required,max=300"`
	Price        *float64          `json:"price"        validate:"required,gte=0"`
	Category     *model.Category   `json:"category"     validate:"omitempty,enum" swaggertype:"string" enums:"Breakfast,Lunch,Dinner,Desserts,Beverages,Snacks"`
	Image        string            `json:"image"        validate:"omitempty,url"`
	Cuisine      *model.Cuisine    `json:"cuisine"      validate:"omitempty,enum" swaggertype:"string" enums:"Continental,Asian,Italian,Indian,Mexican,Other"`
	Available    *bool             `json:"available"`
	IsVegetarian *bool             `json:"isVegetarian"`
	SpicyLevel   *model.SpicyLevel `json:"spicyLevel"   validate:"omitempty,enum" swaggertype:"string" enums:"None,Mild,Medium,Hot"`
	Rating       *float64          `json:"rating"       validate:"omitempty,gte=1,lte=5"`
}

func (c *CreateFoodRequest) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
}

func (c *CreateFoodRequest) ToModel(user string) model.Food {
	food := model.Food{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Price:       *c.Price,
		Category:    model.CategoryLunch,
		Image:       model.DefaultImage,
		Cuisine:     model.CuisineContinental,
		Available:   true,
		SpicyLevel:  model.SpicyNone,
		Rating:      model.DefaultRating,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}

	if c.Category != nil {
		food.Category = *c.Category
	}

	if c.Image != "" {
		food.Image = c.Image
	}

	if c.Cuisine != nil {
		food.Cuisine = *c.Cuisine
	}

	if c.Available != nil {
		food.Available = *c.Available
	}

	if c.IsVegetarian != nil {
		food.IsVegetarian = *c.IsVegetarian
	}

	if c.SpicyLevel != nil {
		food.SpicyLevel = *c.SpicyLevel
	}

	if c.Rating != nil {
		food.Rating = *c.Rating
	}

	return food
}

type UpdateFoodRequest struct {
	Name         string            `db:"name"          json:"name"         validate:"omitempty,max=100"`
	Description  string            `db:"description"   json:"description"  validate:"omitempty,max=300"`
	Price        *float64          `db:"price"         json:"price"        validate:"omitempty,gte=0"`
	Category     *model.Category   `db:"category"      json:"category"     validate:"omitempty,enum" swaggertype:"string"`
	Image        string            `db:"image"         json:"image"        validate:"omitempty,url"`
	Cuisine      *model.Cuisine    `db:"cuisine"       json:"cuisine"      validate:"omitempty,enum" swaggertype:"string"`
	Available    *bool             `db:"available"     json:"available"`
	IsVegetarian *bool             `db:"is_vegetarian" json:"isVegetarian"`
	SpicyLevel   *model.SpicyLevel `db:"spicy_level"   json:"spicyLevel"   validate:"omitempty,enum" swaggertype:"string"`
	Rating       *float64          `db:"rating"        json:"rating"       validate:"omitempty,gte=1,lte=5"`
}

func (u *UpdateFoodRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
}

type FoodQuery struct {
	Category     *model.Category
	Cuisine      *model.Cuisine
	IsVegetarian *bool
	Available    *bool
}

func (q *FoodQuery) FromValues(values url.Values) (err error) {
	if q.Category, err = shared.ParseOptionalEnum[model.Category](QueryCategory, values.Get(QueryCategory)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.Cuisine, err = shared.ParseOptionalEnum[model.Cuisine](QueryCuisine, values.Get(QueryCuisine)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.IsVegetarian, err = shared.ParseOptionalBool(QueryIsVegetarian, values.Get(QueryIsVegetarian)); err != nil {
		return err //nolint:wrapcheck
	}

	if q.Available, err = shared.ParseOptionalBool(QueryAvailable, values.Get(QueryAvailable)); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (q *FoodQuery) ToFilter() gDto.FilterGroup {
	filter := gDto.And()

	if q.Category != nil {
		filter.Add(gDto.Filter{Field: model.FieldCategory, Value: *q.Category, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.Cuisine != nil {
		filter.Add(gDto.Filter{Field: model.FieldCuisine, Value: *q.Cuisine, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.IsVegetarian != nil {
		filter.Add(gDto.Filter{Field: model.FieldIsVegetarian, Value: *q.IsVegetarian, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if q.Available != nil {
		filter.Add(gDto.Filter{Field: model.FieldAvailable, Value: *q.Available, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return filter
}

// ByCategory lists the items a guest can currently order from one menu section.
func ByCategory(category model.Category) FoodQuery {
	return FoodQuery{Category: &category, Available: shared.Ptr(true)}
}

type FoodResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Cuisine      string  `json:"cuisine"`
	Available    bool    `json:"available"`
	IsVegetarian bool    `json:"isVegetarian"`
	SpicyLevel   string  `json:"spicyLevel"`
	Rating       float64 `json:"rating"`
	gDto.Metadata
}

func (f *FoodResponse) FromModel(model model.Food) {
	f.ID = model.ID
	f.Name = model.Name
	f.Description = model.Description
	f.Price = model.Price
	f.Category = string(model.Category)
	f.Image = model.Image
	f.Cuisine = string(model.Cuisine)
	f.Available = model.Available
	f.IsVegetarian = model.IsVegetarian
	f.SpicyLevel = string(model.SpicyLevel)
	f.Rating = model.Rating
	f.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Food) []FoodResponse {
	res := make([]FoodResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
