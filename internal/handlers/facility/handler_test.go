package facility_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"skyline/infras/otel/mocks"
	"skyline/internal/domains/facility/model"
	"skyline/internal/domains/facility/model/dto"
	serviceMocks "skyline/internal/domains/facility/service/mocks"
	"skyline/internal/handlers/facility"
	"skyline/shared/failure"
)

const facilityID = "3f1e2d4c-5b6a-4789-8abc-def012345678"

func setup(t *testing.T) (*serviceMocks.MockFacility, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockFacility(ctrl)

	handler := facility.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func serve(router http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestGetFacilities(t *testing.T) {
	tests := []struct {
		name  string
		query string
		check func(t *testing.T, query dto.FacilityQuery)
		code  int
	}{
		{
			name:  "no filters",
			query: "",
			check: func(t *testing.T, query dto.FacilityQuery) {
				assert.Nil(t, query.Category)
				assert.Nil(t, query.Available)
			},
			code: http.StatusOK,
		},
		{
			name:  "category and availability",
			query: "?category=Dining&available=true",
			check: func(t *testing.T, query dto.FacilityQuery) {
				assert.Equal(t, model.CategoryDining, *query.Category)
				assert.True(t, *query.Available)
			},
			code: http.StatusOK,
		},
		{name: "unknown category", query: "?category=Casino", code: http.StatusBadRequest},
		{name: "non boolean flag", query: "?available=sometimes", code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)

			if tt.check != nil {
				svc.EXPECT().GetAll(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, query dto.FacilityQuery) ([]dto.FacilityResponse, error) {
						tt.check(t, query)

						return []dto.FacilityResponse{{ID: facilityID, Name: "Spa"}}, nil
					})
			}

			rec, _ := serve(router, httptest.NewRequest(http.MethodGet, "/api/facilities"+tt.query, nil))

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestCreateFacility(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.FacilityResponse{ID: facilityID, Name: "Spa"}, nil)

		body := `{"name":"Spa","description":"Massage and sauna"}`
		rec, res := serve(router, httptest.NewRequest(http.MethodPost, "/api/facilities", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Facility created successfully", res["message"])
	})

	t.Run("description too long", func(t *testing.T) {
		_, router := setup(t)

		body := `{"name":"Spa","description":"` + string(bytes.Repeat([]byte("x"), 301)) + `"}`
		rec, res := serve(router, httptest.NewRequest(http.MethodPost, "/api/facilities", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "description must be at most 300", res["message"])
	})
}

func TestUpdateFacility(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Update(gomock.Any(), facilityID, gomock.Any()).Return(dto.FacilityResponse{}, failure.NotFound("Facility not found"))

	rec, res := serve(router, httptest.NewRequest(http.MethodPut, "/api/facilities/"+facilityID, bytes.NewBufferString(`{"available":false}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Facility not found", res["message"])
}

func TestDeleteFacility(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Delete(gomock.Any(), facilityID).Return(nil)

	rec, res := serve(router, httptest.NewRequest(http.MethodDelete, "/api/facilities/"+facilityID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Facility deleted successfully", res["message"])
}

func TestGetFacilityByID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), facilityID).Return(dto.FacilityResponse{ID: facilityID, OperatingHours: "24/7"}, nil)

	rec, res := serve(router, httptest.NewRequest(http.MethodGet, "/api/facilities/"+facilityID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "24/7", res["data"].(map[string]any)["operatingHours"])
}
