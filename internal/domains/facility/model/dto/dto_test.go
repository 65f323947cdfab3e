package dto_test

import (
	"net/url"
	"testing"

	"skyline/internal/domains/facility/model"
	"skyline/internal/domains/facility/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestFacilityQuery_FromValues(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantWhere string
		wantErr   string
	}{
		{name: "no filters", values: url.Values{}, wantWhere: ""},
		{
			name:      "category and availability",
			values:    url.Values{"category": {"Business"}, "available": {"true"}},
			wantWhere: "(facilities.category = :category AND facilities.available = :available)",
		},
		{name: "unknown category", values: url.Values{"category": {"Casino"}}, wantErr: "category has an invalid value Casino"},
		{name: "bad flag", values: url.Values{"available": {"sometimes"}}, wantErr: "available must be true or false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query dto.FacilityQuery

			err := query.FromValues(tt.values)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)

			filter := query.ToFilter()
			where, _ := filter.GetWhereClause()
			assert.Equal(t, tt.wantWhere, where)
		})
	}
}

func TestCreateFacilityRequest_ToModel(t *testing.T) {
	category := model.CategoryDining
	req := dto.CreateFacilityRequest{
		Name:           "  Rooftop Bar ",
		Description:    "Cocktails",
		Category:       &category,
		OperatingHours: "17:00 - 01:00",
	}
	req.Normalize()

	facility := req.ToModel("admin-id")

	assert.NotEmpty(t, facility.ID)
	assert.Equal(t, "Rooftop Bar", facility.Name)
	assert.Equal(t, model.CategoryDining, facility.Category)
	assert.Equal(t, "17:00 - 01:00", facility.OperatingHours)
	assert.Equal(t, model.DefaultIcon, facility.Icon)
	assert.Equal(t, "admin-id", facility.CreatedBy)
}
