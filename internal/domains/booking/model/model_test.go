package model_test

import (
	"testing"
	"time"

	"skyline/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "one night", checkIn: day(10), checkOut: day(11), want: 1},
		{name: "same day", checkIn: day(10), checkOut: day(10), want: 0},
		{name: "reversed", checkIn: day(12), checkOut: day(10), want: -2},
		{name: "partial day rounds up", checkIn: day(10), checkOut: day(11).Add(2 * time.Hour), want: 2},
		{name: "a week", checkIn: day(1), checkOut: day(8), want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
			assert.Equal(t, tt.want, model.Booking{CheckInDate: tt.checkIn, CheckOutDate: tt.checkOut}.NumberOfNights())
		})
	}
}

func TestEnums_Valid(t *testing.T) {
	assert.True(t, model.StatusCompleted.Valid())
	assert.False(t, model.Status("Archived").Valid())
	assert.True(t, model.PaymentRefunded.Valid())
	assert.False(t, model.PaymentStatus("Partial").Valid())
	assert.True(t, model.PaymentCreditCard.Valid())
	assert.False(t, model.PaymentMethod("Crypto").Valid())
}

func TestBookingDetail_GetJoinQuery(t *testing.T) {
	assert.Equal(t,
		"LEFT JOIN rooms ON rooms.id = bookings.room_id LEFT JOIN users ON users.id = bookings.user_id",
		model.BookingDetail{}.GetJoinQuery(),
	)
}
