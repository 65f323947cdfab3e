package dto_test

import (
	"skyline/shared/constant"
	"skyline/shared/dto"
	"skyline/shared/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "admin",
		ModifiedBy: "admin",
	})

	parsedCreated, err := time.Parse(constant.DateFormat, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(parsedCreated))

	parsedModified, err := time.Parse(constant.DateFormat, metadata.ModifiedAt)
	assert.NoError(t, err)
	assert.True(t, modifiedAt.Equal(parsedModified))
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "type", Value: "Suite", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.type = :type",
			wantArgs:  map[string]any{"type": "Suite"},
		},
		{
			name:      "greater or equal with arg name",
			filter:    dto.Filter{ArgName: "min_price", Field: "price", Value: 200.0, Operator: dto.FilterOperatorGreaterEq, Table: "rooms"},
			wantWhere: "rooms.price >= :min_price",
			wantArgs:  map[string]any{"min_price": 200.0},
		},
		{
			name:      "less or equal with arg name",
			filter:    dto.Filter{ArgName: "max_price", Field: "price", Value: 300.0, Operator: dto.FilterOperatorLessEq},
			wantWhere: "price <= :max_price",
			wantArgs:  map[string]any{"max_price": 300.0},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "status", Value: []string{"Pending", "Confirmed"}, Operator: dto.FilterOperatorIn},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "Pending", "status_1": "Confirmed"},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "pool", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%pool%"},
		},
		{
			name:      "unknown operator renders nothing",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup(t *testing.T) {
	group := dto.And()
	assert.True(t, group.IsEmpty())

	where, args := group.GetWhereClause()
	assert.Empty(t, where)
	assert.Empty(t, args)

	group.
		Add(dto.Filter{Field: "featured", Value: true, Operator: dto.FilterOperatorEq, Table: "rooms"}).
		Add(dto.Filter{Field: "availability", Value: true, Operator: dto.FilterOperatorEq, Table: "rooms"})

	where, args = group.GetWhereClause()

	assert.False(t, group.IsEmpty())
	assert.Equal(t, "(rooms.featured = :featured AND rooms.availability = :availability)", where)
	assert.Equal(t, map[string]any{"featured": true, "availability": true}, args)
}

func TestFilterGroup_Nested(t *testing.T) {
	inner := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{ArgName: "s1", Field: "status", Value: "Pending", Operator: dto.FilterOperatorEq},
			dto.Filter{ArgName: "s2", Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq},
		},
	}

	outer := dto.And(dto.Filter{Field: "user_id", Value: "u1", Operator: dto.FilterOperatorEq}, inner)

	where, args := outer.GetWhereClause()

	assert.Equal(t, "(user_id = :user_id AND (status = :s1 OR status = :s2))", where)
	assert.Len(t, args, 3)
}

func TestSortedBy(t *testing.T) {
	params := dto.SortedBy("name", dto.SortDirAsc)

	assert.Equal(t, dto.QueryParams{SortBy: "name", SortDir: "ASC"}, params)
}

func TestFilterGroup_SkipsEmptyClauses(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "name", Value: "x", Operator: "between"},
			dto.Filter{Field: "type", Value: "Suite", Operator: dto.FilterOperatorNotEq},
			"not a filter",
			dto.Or(),
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(type != :type)", where)
	assert.Equal(t, map[string]any{"type": "Suite"}, args)
}
