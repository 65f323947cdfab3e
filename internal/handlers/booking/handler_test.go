package booking_test

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
	"skyline/internal/domains/booking/model"
	"skyline/internal/domains/booking/model/dto"
	serviceMocks "skyline/internal/domains/booking/service/mocks"
	"skyline/internal/handlers/booking"
	"skyline/shared/constant"
	"skyline/shared/failure"
)

const (
	bookingID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	guestID   = "9b2f4c1e-3d6a-4f8b-9c0d-1e2f3a4b5c6d"
	roomID    = "550e8400-e29b-41d4-a716-446655440000"
)

func setup(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockBooking(ctrl)

	handler := booking.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func serve(router http.Handler, req *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, guestID))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)

	return rec, body
}

func TestCreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, guestID, ctx.Value(constant.ContextKeyUserID))
				assert.Equal(t, roomID, req.RoomID)
				assert.Equal(t, model.PaymentCreditCard, *req.PaymentMethod)

				return dto.BookingResponse{ID: bookingID, TotalPrice: 400, NumberOfNights: 2}, nil
			})

		body := `{"room":"` + roomID + `","checkInDate":"2024-06-10","checkOutDate":"2024-06-12","numberOfGuests":2,"paymentMethod":"Credit Card"}`
		rec, res := serve(router, httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Booking created successfully", res["message"])
		assert.Equal(t, float64(400), res["data"].(map[string]any)["totalPrice"])
	})

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "missing room",
			body:     `{"checkInDate":"2024-06-10","checkOutDate":"2024-06-12","numberOfGuests":2}`,
			expected: "room is required",
		},
		{
			name:     "zero guests",
			body:     `{"room":"` + roomID + `","checkInDate":"2024-06-10","checkOutDate":"2024-06-12","numberOfGuests":0}`,
			expected: "numberOfGuests is required",
		},
		{
			name:     "unknown payment method",
			body:     `{"room":"` + roomID + `","checkInDate":"2024-06-10","checkOutDate":"2024-06-12","numberOfGuests":1,"paymentMethod":"Barter"}`,
			expected: "paymentMethod has an invalid value Barter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router := setup(t)

			rec, res := serve(router, httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.expected, res["message"])
		})
	}
}

func TestGetMyBookings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetMine(gomock.Any()).Return([]dto.BookingResponse{{ID: bookingID}}, nil)

	rec, res := serve(router, httptest.NewRequest(http.MethodGet, "/api/bookings/my-bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), res["count"])
}

func TestGetBookings(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	rec, res := serve(router, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), res["count"])
}

func TestGetBookingByID(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Get(gomock.Any(), bookingID).Return(dto.BookingResponse{}, failure.Forbidden("Not authorized to access this booking"))

	rec, res := serve(router, httptest.NewRequest(http.MethodGet, "/api/bookings/"+bookingID, nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not authorized to access this booking", res["message"])
}

func TestUpdateBooking(t *testing.T) {
	t.Run("status change", func(t *testing.T) {
		svc, router := setup(t)

		svc.EXPECT().Update(gomock.Any(), bookingID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req dto.UpdateBookingRequest) (dto.BookingResponse, error) {
				assert.Equal(t, model.StatusConfirmed, *req.Status)
				assert.Nil(t, req.PaymentStatus)

				return dto.BookingResponse{ID: bookingID, Status: string(model.StatusConfirmed)}, nil
			})

		rec, res := serve(router, httptest.NewRequest(http.MethodPut, "/api/bookings/"+bookingID, bytes.NewBufferString(`{"status":"Confirmed"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Booking updated successfully", res["message"])
	})

	t.Run("unknown status", func(t *testing.T) {
		_, router := setup(t)

		rec, res := serve(router, httptest.NewRequest(http.MethodPut, "/api/bookings/"+bookingID, bytes.NewBufferString(`{"status":"Lost"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "status has an invalid value Lost", res["message"])
	})
}

func TestCancelBooking(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().Cancel(gomock.Any(), bookingID).Return(dto.BookingResponse{ID: bookingID, Status: string(model.StatusCancelled)}, nil)

	rec, res := serve(router, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+bookingID, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Booking cancelled successfully", res["message"])
	assert.Equal(t, "Cancelled", res["data"].(map[string]any)["status"])
}
