package dto_test

import (
	"net/http"
	"testing"
	"time"

	"skyline/internal/domains/booking/model"
	"skyline/internal/domains/booking/model/dto"
	"skyline/shared"
	"skyline/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_Dates(t *testing.T) {
	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		wantCheckIn  time.Time
		wantCheckOut time.Time
		wantErr      string
	}{
		{
			name:         "calendar dates",
			checkIn:      "2024-06-10",
			checkOut:     "2024-06-11",
			wantCheckIn:  time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			wantCheckOut: time.Date(2024, time.June, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "timestamps",
			checkIn:      "2024-06-10T14:00:00Z",
			checkOut:     "2024-06-12T11:00:00Z",
			wantCheckIn:  time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC),
			wantCheckOut: time.Date(2024, time.June, 12, 11, 0, 0, 0, time.UTC),
		},
		{name: "bad check-in", checkIn: "tomorrow", checkOut: "2024-06-11", wantErr: "checkInDate must be a date (YYYY-MM-DD) or RFC3339 timestamp"},
		{name: "bad check-out", checkIn: "2024-06-10", checkOut: "11/06/2024", wantErr: "checkOutDate must be a date (YYYY-MM-DD) or RFC3339 timestamp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateBookingRequest{CheckInDate: tt.checkIn, CheckOutDate: tt.checkOut}

			checkIn, checkOut, err := req.Dates()

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.wantCheckIn.Equal(checkIn))
			assert.True(t, tt.wantCheckOut.Equal(checkOut))
		})
	}
}

func TestCreateBookingRequest_ToModel(t *testing.T) {
	checkIn := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{RoomID: "room-1", NumberOfGuests: 2, SpecialRequests: shared.Ptr("Late check-in")}

	booking := req.ToModel("user-1", checkIn, checkIn.AddDate(0, 0, 2), 300)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentPending, booking.PaymentStatus)
	assert.Equal(t, model.PaymentCash, booking.PaymentMethod)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, "user-1", booking.UserID)

	online := model.PaymentOnline
	req.PaymentMethod = &online
	assert.Equal(t, model.PaymentOnline, req.ToModel("user-1", checkIn, checkIn, 0).PaymentMethod)
}

func TestBookingResponse_FromDetail(t *testing.T) {
	checkIn := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	var res dto.BookingResponse

	res.FromDetail(model.BookingDetail{
		Booking: model.Booking{
			ID:           "booking-1",
			UserID:       "user-1",
			RoomID:       "room-1",
			CheckInDate:  checkIn,
			CheckOutDate: checkIn.AddDate(0, 0, 3),
			Status:       model.StatusConfirmed,
		},
		RoomName:  shared.Ptr("Ocean View"),
		RoomPrice: shared.Ptr(120.0),
		UserEmail: shared.Ptr("jane@example.com"),
	})

	assert.Equal(t, 3, res.NumberOfNights)
	assert.Equal(t, "Ocean View", res.Room.Name)
	assert.Equal(t, 120.0, res.Room.Price)
	assert.Empty(t, res.Room.Type)
	assert.Equal(t, "jane@example.com", res.User.Email)
	assert.Equal(t, "Confirmed", res.Status)
}

func TestUpdateBookingRequest_IsEmpty(t *testing.T) {
	assert.True(t, (&dto.UpdateBookingRequest{}).IsEmpty())

	paid := model.PaymentPaid
	assert.False(t, (&dto.UpdateBookingRequest{PaymentStatus: &paid}).IsEmpty())
}
