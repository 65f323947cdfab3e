package shared_test

import (
	"context"
	"errors"
	"net/http"
	"skyline/shared"
	cacheMocks "skyline/shared/cache/mocks"
	"skyline/shared/constant"
	"skyline/shared/dto"
	"skyline/shared/failure"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestParseOptionalBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
		wantErr  bool
	}{
		{name: "empty string means absent", input: "", expected: nil},
		{name: "true", input: "true", expected: shared.Ptr(true)},
		{name: "false", input: "false", expected: shared.Ptr(false)},
		{name: "numeric form", input: "1", expected: shared.Ptr(true)},
		{name: "garbage is rejected", input: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ParseOptionalBool("availability", tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseOptionalFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *float64
		wantErr  bool
	}{
		{name: "empty string means absent", input: ""},
		{name: "integer", input: "200", expected: shared.Ptr(200.0)},
		{name: "decimal", input: "149.99", expected: shared.Ptr(149.99)},
		{name: "not a number", input: "cheap", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "infinity", input: "Inf", wantErr: true},
		{name: "negative infinity", input: "-infinity", wantErr: true},
		{name: "overflow", input: "1e400", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ParseOptionalFloat("minPrice", tt.input)

			if tt.wantErr {
				assert.EqualError(t, err, "minPrice must be a number")

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

type color string

func (c color) Valid() bool {
	return c == "red" || c == "blue"
}

func TestParseOptionalEnum(t *testing.T) {
	value, err := shared.ParseOptionalEnum[color]("color", "")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = shared.ParseOptionalEnum[color]("color", "red")
	assert.NoError(t, err)
	assert.Equal(t, color("red"), *value)

	_, err = shared.ParseOptionalEnum[color]("color", "green")
	assert.EqualError(t, err, "color has an invalid value green")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestTransformFields(t *testing.T) {
	type update struct {
		Name      string   `db:"name"`
		Price     *float64 `db:"price"`
		Available *bool    `db:"available"`
		Skipped   string   `db:"-"`
		NoTag     string
	}

	req := update{
		Name:      "Garden Suite",
		Available: shared.Ptr(false),
		Skipped:   "ignored",
		NoTag:     "ignored",
	}

	result := shared.TransformFields(req, "admin-id")

	assert.Equal(t, "Garden Suite", result["name"])
	assert.Equal(t, shared.Ptr(false), result["available"])
	assert.NotContains(t, result, "price")
	assert.NotContains(t, result, "-")
	assert.Equal(t, "admin-id", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 4)
}

func TestIsEmptyUpdate(t *testing.T) {
	type update struct {
		Name *string `db:"name"`
	}

	assert.True(t, shared.IsEmptyUpdate(shared.TransformFields(update{}, "admin-id")))
	assert.False(t, shared.IsEmptyUpdate(shared.TransformFields(update{Name: shared.Ptr("Lobby")}, "admin-id")))
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	where, args := result.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{SortBy: "rooms.created_at", SortDir: dto.SortDirDesc}
	filterA := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "type", Value: "Suite", Operator: dto.FilterOperatorEq}},
	}
	filterB := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "type", Value: "Deluxe", Operator: dto.FilterOperatorEq}},
	}

	keyA := shared.BuildCacheKeyWithQuery("room:gets", params, filterA)

	assert.Equal(t, keyA, shared.BuildCacheKeyWithQuery("room:gets", params, filterA))
	assert.NotEqual(t, keyA, shared.BuildCacheKeyWithQuery("room:gets", params, filterB))
	assert.Contains(t, keyA, "room:gets:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "room:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "room:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "room:get*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "room:get")
}
