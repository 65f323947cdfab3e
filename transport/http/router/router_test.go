package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"skyline/config"
	jwtMocks "skyline/infras/jwt/mocks"
	"skyline/infras/otel/mocks"
	authMocks "skyline/internal/domains/auth/service/mocks"
	bookingMocks "skyline/internal/domains/booking/service/mocks"
	facilityMocks "skyline/internal/domains/facility/service/mocks"
	foodMocks "skyline/internal/domains/food/service/mocks"
	roomDto "skyline/internal/domains/room/model/dto"
	roomMocks "skyline/internal/domains/room/service/mocks"
	userMocks "skyline/internal/domains/user/service/mocks"
	"skyline/internal/handlers/auth"
	"skyline/internal/handlers/booking"
	"skyline/internal/handlers/facility"
	"skyline/internal/handlers/food"
	"skyline/internal/handlers/room"
	"skyline/internal/handlers/user"
	"skyline/permissions"
	cacheMocks "skyline/shared/cache/mocks"
	"skyline/transport/http/middleware"
	"skyline/transport/http/router"
)

func setup(t *testing.T) (*roomMocks.MockRoom, http.Handler) {
	ctrl := gomock.NewController(t)
	otel := mocks.NewOtel()
	cfg := &config.Config{}

	rooms := roomMocks.NewMockRoom(ctrl)

	handlers := router.DomainHandlers{
		Auth:     auth.New(authMocks.NewMockAuth(ctrl), otel),
		User:     user.New(userMocks.NewMockUser(ctrl), otel),
		Room:     room.New(rooms, otel),
		Facility: facility.New(facilityMocks.NewMockFacility(ctrl), otel),
		Food:     food.New(foodMocks.NewMockFood(ctrl), otel),
		Booking:  booking.New(bookingMocks.NewMockBooking(ctrl), otel),
	}

	r := router.New(
		handlers,
		middleware.NewAppMiddleware(otel, cfg, cacheMocks.NewMockRedisCache(ctrl)),
		middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otel, permissions.Get(), cfg),
	)

	mux := chi.NewRouter()
	r.SetupRoutes(mux)

	return rooms, mux
}

func serve(handler http.Handler, method, target string) (*httptest.ResponseRecorder, map[string]any) {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestWelcome(t *testing.T) {
	_, mux := setup(t)

	rec, body := serve(mux, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, rec.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Welcome to Skyline Retreat Hotel API", data["message"])
	assert.Equal(t, "1.0.0", data["version"])
	assert.Equal(t, "/api/bookings", data["endpoints"].(map[string]any)["bookings"])
}

func TestUnknownRoutes(t *testing.T) {
	_, mux := setup(t)

	rec, body := serve(mux, http.MethodGet, "/api/spa")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", body["message"])
	assert.Equal(t, false, body["success"])

	rec, _ = serve(mux, http.MethodPatch, "/api/rooms")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouteProtection(t *testing.T) {
	t.Run("catalogue is public", func(t *testing.T) {
		rooms, mux := setup(t)
		rooms.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return([]roomDto.RoomResponse{}, nil)

		rec, body := serve(mux, http.MethodGet, "/api/rooms")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(0), body["count"])
	})

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodPost, target: "/api/rooms"},
		{method: http.MethodGet, target: "/api/users"},
		{method: http.MethodGet, target: "/api/users/profile"},
		{method: http.MethodGet, target: "/api/bookings/my-bookings"},
		{method: http.MethodDelete, target: "/api/bookings/550e8400-e29b-41d4-a716-446655440000"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target+" needs a token", func(t *testing.T) {
			_, mux := setup(t)

			rec, body := serve(mux, tt.method, tt.target)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Not authorized, no token", body["message"])
		})
	}
}
