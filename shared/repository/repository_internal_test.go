package repository

import (
	"skyline/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

type audit struct {
	CreatedBy string `db:"created_by"`
}

type stay struct {
	ID     string `db:"id"`
	RoomID string `db:"room_id"`
	Note   string `db:"-"`
	Plain  string
	audit
}

type stayDetail struct {
	stay
	RoomName *string `db:"room_name" table:"rooms" column:"name"`
}

func (stayDetail) GetJoinQuery() string {
	return "LEFT JOIN rooms ON rooms.id = stays.room_id"
}

func TestNewRepository(t *testing.T) {
	plain := NewRepository[stay]("stay", "stays", "id", nil, nil)

	assert.Empty(t, plain.join)
	assert.Equal(t, "INSERT INTO stays (id, room_id, created_by) VALUES (:id, :room_id, :created_by)", plain.insertQuery)
	assert.Equal(t, "stays.id, stays.room_id, stays.created_by", plain.selectList())

	detail := NewRepository[stayDetail]("stay_detail", "stays", "id", nil, nil)

	assert.Equal(t, "LEFT JOIN rooms ON rooms.id = stays.room_id", detail.join)
	assert.Equal(t, "INSERT INTO stays (id, room_id, created_by) VALUES (:id, :room_id, :created_by)", detail.insertQuery)
	assert.Equal(t, "stays.id, stays.room_id, stays.created_by, rooms.name AS room_name", detail.selectList())
	assert.Equal(t, "stays.id, rooms.name AS room_name", detail.selectList("id", "name"))
}

func TestSetClause(t *testing.T) {
	mod := map[string]any{"status": "cancelled", "modified_at": "now", "guests": 2}

	for range 5 {
		assert.Equal(t, "guests = :guests, modified_at = :modified_at, status = :status", setClause(mod))
	}
}

func TestOrderingAndPagination(t *testing.T) {
	repo := NewRepository[stay]("stay", "stays", "id", nil, nil)

	tests := []struct {
		name       string
		params     dto.QueryParams
		order      string
		limit      string
		expectArgs map[string]any
	}{
		{
			name:       "unsorted and unbounded",
			params:     dto.QueryParams{},
			expectArgs: map[string]any{},
		},
		{
			name:       "limit only",
			params:     dto.QueryParams{Limit: 3},
			limit:      "LIMIT :limit",
			expectArgs: map[string]any{"limit": 3},
		},
		{
			name:       "sorted page",
			params:     dto.QueryParams{SortBy: "stays.created_at", SortDir: dto.SortDirDesc, Page: 3, Limit: 10},
			order:      "ORDER BY stays.created_at DESC, stays.id",
			limit:      "LIMIT :limit OFFSET :offset",
			expectArgs: map[string]any{"limit": 10, "offset": 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}

			assert.Equal(t, tt.order, repo.ordering(tt.params))
			assert.Equal(t, tt.limit, pagination(tt.params, args))
			assert.Equal(t, tt.expectArgs, args)
		})
	}
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[stay]("stay", "stays", "id", nil, nil)

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "id", Value: "abc", Operator: dto.FilterOperatorEq, Table: "stays"}},
	})
	assert.Equal(t, "WHERE (stays.id = :id)", where)
	assert.Equal(t, "abc", args["id"])
}

func TestCompact(t *testing.T) {
	assert.Equal(t, "SELECT a FROM t", compact("SELECT", "a", "", "FROM", "t", ""))
}
