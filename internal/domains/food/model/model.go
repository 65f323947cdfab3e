package model

import "skyline/shared/model"

const (
	TableName  = "foods"
	EntityName = "food"

	FieldID           = "id"
	FieldName         = "name"
	FieldCategory     = "category"
	FieldCuisine      = "cuisine"
	FieldAvailable    = "available"
	FieldIsVegetarian = "is_vegetarian"

	DefaultImage  = "https://via.placeholder.com/300x200?text=Food+Item"
	DefaultRating = 4.0
)

type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDesserts  Category = "Desserts"
	CategoryBeverages Category = "Beverages"
	CategorySnacks    Category = "Snacks"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner, CategoryDesserts, CategoryBeverages, CategorySnacks:
		return true
	default:
		return false
	}
}

type Cuisine string

const (
	CuisineContinental Cuisine = "Continental"
	CuisineAsian       Cuisine = "Asian"
	CuisineItalian     Cuisine = "Italian"
	CuisineIndian      Cuisine = "Indian"
	CuisineMexican     Cuisine = "Mexican"
	CuisineOther       Cuisine = "Other"
)

func (c Cuisine) Valid() bool {
	switch c {
	case CuisineContinental, CuisineAsian, CuisineItalian, CuisineIndian, CuisineMexican, CuisineOther:
		return true
	default:
		return false
	}
}

type SpicyLevel string

const (
	SpicyNone   SpicyLevel = "None"
	SpicyMild   SpicyLevel = "Mild"
	SpicyMedium SpicyLevel = "Medium"
	SpicyHot    SpicyLevel = "Hot"
)

func (s SpicyLevel) Valid() bool {
	switch s {
	case SpicyNone, SpicyMild, SpicyMedium, SpicyHot:
		return true
	default:
		return false
	}
}

type Food struct {
	ID           string     `db:"id"`
	Name         string     `db:"name"`
	Description  string     `db:"description"`
	Price        float64    `db:"price"`
	Category     Category   `db:"category"`
	Image        string     `db:"image"`
	Cuisine      Cuisine    `db:"cuisine"`
	Available    bool       `db:"available"`
	IsVegetarian bool       `db:"is_vegetarian"`
	SpicyLevel   SpicyLevel `db:"spicy_level"`
	Rating       float64    `db:"rating"`
	model.Metadata
}
