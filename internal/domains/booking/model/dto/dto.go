package dto

import (
	"time"

	"skyline/internal/domains/booking/model"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	gModel "skyline/shared/model"
	"skyline/shared/timezone"

	"github.com/google/uuid"
)

// CreateBookingRequest uses "room" for the room id, the key booking clients already send.
type CreateBookingRequest struct {
	RoomID          string               `json:"room"            validate:"required,uuid"`
	CheckInDate     string               `json:"checkInDate"     validate:"required"                example:"2024-06-10"`
	CheckOutDate    string               `json:"checkOutDate"    validate:"required"                example:"2024-06-12"`
	NumberOfGuests  int                  `json:"numberOfGuests"  validate:"required,min=1"`
	SpecialRequests *string              `json:"specialRequests" validate:"omitempty,max=500"`
	PaymentMethod   *model.PaymentMethod `json:"paymentMethod"   validate:"omitempty,enum" swaggertype:"string" enums:"Cash,Credit Card,Debit Card,Online"`
}

// Dates parses the stay boundaries. Calendar dates are taken as midnight UTC.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	if checkIn, err = timezone.ParseDate(c.CheckInDate); err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("checkInDate must be a date (YYYY-MM-DD) or RFC3339 timestamp") //nolint:wrapcheck
	}

	if checkOut, err = timezone.ParseDate(c.CheckOutDate); err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("checkOutDate must be a date (YYYY-MM-DD) or RFC3339 timestamp") //nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

func (c *CreateBookingRequest) ToModel(userID string, checkIn, checkOut time.Time, totalPrice float64) model.Booking {
	booking := model.Booking{
		ID:              uuid.NewString(),
		UserID:          userID,
		RoomID:          c.RoomID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		NumberOfGuests:  c.NumberOfGuests,
		TotalPrice:      totalPrice,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
		PaymentMethod:   model.PaymentCash,
		SpecialRequests: c.SpecialRequests,
		Metadata:        gModel.NewMetadata(timezone.Now(), userID),
	}

	if c.PaymentMethod != nil {
		booking.PaymentMethod = *c.PaymentMethod
	}

	return booking
}

// UpdateBookingRequest is the administrative status change. Any value may follow any other.
type UpdateBookingRequest struct {
	Status        *model.Status        `db:"status"         json:"status"        validate:"omitempty,enum" swaggertype:"string" enums:"Pending,Confirmed,Cancelled,Completed"`
	PaymentStatus *model.PaymentStatus `db:"payment_status" json:"paymentStatus" validate:"omitempty,enum" swaggertype:"string" enums:"Pending,Paid,Refunded"`
}

func (u *UpdateBookingRequest) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil
}

type RoomSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity,omitempty"`
	Image    string  `json:"image,omitempty"`
}

type GuestSummary struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID              string       `json:"id"`
	User            GuestSummary `json:"user"`
	Room            RoomSummary  `json:"room"`
	CheckInDate     string       `json:"checkInDate"`
	CheckOutDate    string       `json:"checkOutDate"`
	NumberOfGuests  int          `json:"numberOfGuests"`
	NumberOfNights  int          `json:"numberOfNights"`
	TotalPrice      float64      `json:"totalPrice"`
	Status          string       `json:"status"`
	PaymentStatus   string       `json:"paymentStatus"`
	PaymentMethod   string       `json:"paymentMethod"`
	SpecialRequests *string      `json:"specialRequests,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromDetail(detail model.BookingDetail) {
	b.ID = detail.ID
	b.CheckInDate = timezone.Format(detail.CheckInDate, constant.DateFormat)
	b.CheckOutDate = timezone.Format(detail.CheckOutDate, constant.DateFormat)
	b.NumberOfGuests = detail.NumberOfGuests
	b.NumberOfNights = detail.NumberOfNights()
	b.TotalPrice = detail.TotalPrice
	b.Status = string(detail.Status)
	b.PaymentStatus = string(detail.PaymentStatus)
	b.PaymentMethod = string(detail.PaymentMethod)
	b.SpecialRequests = detail.SpecialRequests
	b.Metadata.FromModel(detail.Metadata)

	b.Room = RoomSummary{
		ID:       detail.RoomID,
		Name:     value(detail.RoomName),
		Type:     value(detail.RoomType),
		Price:    value(detail.RoomPrice),
		Capacity: value(detail.RoomCapacity),
		Image:    value(detail.RoomImage),
	}

	b.User = GuestSummary{
		ID:    detail.UserID,
		Name:  value(detail.UserName),
		Email: value(detail.UserEmail),
		Phone: detail.UserPhone,
	}
}

func FromDetails(details []model.BookingDetail) []BookingResponse {
	res := make([]BookingResponse, len(details))
	for i, detail := range details {
		res[i].FromDetail(detail)
	}

	return res
}

func value[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}

	return *ptr
}
