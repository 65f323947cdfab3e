package model_test

import (
	"testing"

	"skyline/internal/domains/food/model"

	"github.com/stretchr/testify/assert"
)

func TestEnums_Valid(t *testing.T) {
	assert.True(t, model.CategoryDesserts.Valid())
	assert.False(t, model.Category("Brunch").Valid())

	assert.True(t, model.CuisineIndian.Valid())
	assert.False(t, model.Cuisine("French").Valid())

	assert.True(t, model.SpicyHot.Valid())
	assert.False(t, model.SpicyLevel("Extreme").Valid())
}
