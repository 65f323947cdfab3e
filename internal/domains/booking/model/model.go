package model

import (
	"fmt"
	"math"
	"time"

	"skyline/shared/constant"
	"skyline/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldUserID        = "user_id"
	FieldRoomID        = "room_id"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldCreatedAt     = "created_at"

	roomTable = "rooms"
	userTable = "users"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentOnline     PaymentMethod = "Online"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentOnline:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID              string        `db:"id"`
	UserID          string        `db:"user_id"`
	RoomID          string        `db:"room_id"`
	CheckInDate     time.Time     `db:"check_in_date"`
	CheckOutDate    time.Time     `db:"check_out_date"`
	NumberOfGuests  int           `db:"number_of_guests"`
	TotalPrice      float64       `db:"total_price"`
	Status          Status        `db:"status"`
	PaymentStatus   PaymentStatus `db:"payment_status"`
	PaymentMethod   PaymentMethod `db:"payment_method"`
	SpecialRequests *string       `db:"special_requests"`
	model.Metadata
}

// NumberOfNights counts started days between check-in and check-out.
func (b Booking) NumberOfNights() int {
	return Nights(b.CheckInDate, b.CheckOutDate)
}

func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / constant.HoursPerDay))
}

// BookingDetail is a booking read together with its room and guest. The joined
// columns are nullable because rooms can be deleted out from under old bookings.
type BookingDetail struct {
	Booking
	RoomName     *string  `db:"room_name"     table:"rooms" column:"name"`
	RoomType     *string  `db:"room_type"     table:"rooms" column:"type"`
	RoomPrice    *float64 `db:"room_price"    table:"rooms" column:"price"`
	RoomCapacity *int     `db:"room_capacity" table:"rooms" column:"capacity"`
	RoomImage    *string  `db:"room_image"    table:"rooms" column:"image"`
	UserName     *string  `db:"user_name"     table:"users" column:"name"`
	UserEmail    *string  `db:"user_email"    table:"users" column:"email"`
	UserPhone    *string  `db:"user_phone"    table:"users" column:"phone"`
}

func (BookingDetail) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.id = %s.%s LEFT JOIN %s ON %s.id = %s.%s",
		roomTable, roomTable, TableName, FieldRoomID,
		userTable, userTable, TableName, FieldUserID,
	)
}
