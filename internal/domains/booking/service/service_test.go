package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"skyline/infras/otel/mocks"
	"skyline/internal/domains/booking/event"
	eventMocks "skyline/internal/domains/booking/event/mocks"
	bookingMocks "skyline/internal/domains/booking/mocks"
	"skyline/internal/domains/booking/model"
	"skyline/internal/domains/booking/model/dto"
	"skyline/internal/domains/booking/service"
	roomMocks "skyline/internal/domains/room/mocks"
	roomModel "skyline/internal/domains/room/model"
	userMocks "skyline/internal/domains/user/mocks"
	"skyline/shared"
	cacheMocks "skyline/shared/cache/mocks"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	repoMocks "skyline/shared/repository/mocks"
)

const (
	guestID  = "9b2f4c1e-3d6a-4f8b-9c0d-1e2f3a4b5c6d"
	otherID  = "1a2b3c4d-5e6f-4a8b-9c0d-e1f2a3b4c5d6"
	roomID   = "550e8400-e29b-41d4-a716-446655440000"
	bookedID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

type fixture struct {
	repo       *bookingMocks.MockBooking
	roomRepo   *roomMocks.MockRoom
	userRepo   *userMocks.MockUser
	transactor *repoMocks.MockTransactor
	publisher  *eventMocks.MockPublisher
	events     chan event.BookingEvent
	dropped    *[]string
	svc        service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		roomRepo:   roomMocks.NewMockRoom(ctrl),
		userRepo:   userMocks.NewMockUser(ctrl),
		transactor: repoMocks.NewMockTransactor(ctrl),
		publisher:  eventMocks.NewMockPublisher(ctrl),
		events:     make(chan event.BookingEvent, 4),
		dropped:    &[]string{},
	}

	drop := func(_ context.Context, key string) error {
		*f.dropped = append(*f.dropped, key)

		return nil
	}

	redis := cacheMocks.NewMockRedisCache(ctrl)
	redis.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(drop).AnyTimes()
	redis.EXPECT().Clear(gomock.Any(), gomock.Any()).DoAndReturn(drop).AnyTimes()

	// events are published from a detached goroutine
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, evt event.BookingEvent) error {
			f.events <- evt

			return nil
		}).AnyTimes()

	f.svc = service.New(f.repo, f.roomRepo, f.userRepo, f.transactor, f.publisher, redis, mocks.NewOtel())

	return f
}

func (f fixture) nextEvent(t *testing.T) event.BookingEvent {
	t.Helper()

	select {
	case evt := <-f.events:
		return evt
	case <-time.After(time.Second):
		t.Fatal("no booking event published")

		return event.BookingEvent{}
	}
}

func (f fixture) runTx() {
	f.transactor.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(tx *sqlx.Tx) error) error {
			return fn(nil)
		})
}

func asUser(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func sampleRoom() roomModel.Room {
	return roomModel.Room{
		ID:           roomID,
		Name:         "Garden Suite",
		Type:         roomModel.TypeSuite,
		Price:        200,
		Capacity:     2,
		Availability: true,
	}
}

func sampleDetail(owner string) model.BookingDetail {
	return model.BookingDetail{
		Booking: model.Booking{
			ID:             bookedID,
			UserID:         owner,
			RoomID:         roomID,
			CheckInDate:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate:   time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			NumberOfGuests: 2,
			TotalPrice:     400,
			Status:         model.StatusPending,
			PaymentStatus:  model.PaymentPending,
			PaymentMethod:  model.PaymentCash,
		},
	}
}

func createRequest(checkIn, checkOut string, guests int) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:         roomID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: guests,
	}
}

func TestCreate(t *testing.T) {
	t.Run("prices the stay and links it to the guest", func(t *testing.T) {
		f := newFixture(t)

		var inserted model.Booking

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleRoom(), nil)
		f.runTx()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			})
		f.userRepo.EXPECT().AppendBookingTx(gomock.Any(), gomock.Any(), guestID, gomock.Any()).Return(nil)
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.FilterGroup) (model.BookingDetail, error) {
				return model.BookingDetail{Booking: inserted, RoomName: shared.Ptr("Garden Suite")}, nil
			})

		res, err := f.svc.Create(asUser(guestID), createRequest("2024-06-10", "2024-06-12", 2))

		assert.NoError(t, err)
		assert.Equal(t, 400.0, res.TotalPrice)
		assert.Equal(t, 2, res.NumberOfNights)
		assert.Equal(t, string(model.StatusPending), res.Status)
		assert.Equal(t, string(model.PaymentPending), res.PaymentStatus)
		assert.Equal(t, string(model.PaymentCash), res.PaymentMethod)
		assert.Equal(t, guestID, inserted.UserID)
		assert.Equal(t, "Garden Suite", res.Room.Name)
		assert.Equal(t, []string{"user:get:" + guestID, "user:gets*"}, *f.dropped, "guest profile must be fresh once Create returns")

		evt := f.nextEvent(t)
		assert.Equal(t, event.TypeCreated, evt.Type)
		assert.Equal(t, inserted.ID, evt.BookingID)
	})

	t.Run("single night is accepted", func(t *testing.T) {
		f := newFixture(t)

		var inserted model.Booking

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleRoom(), nil)
		f.runTx()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
				inserted = booking

				return nil
			})
		f.userRepo.EXPECT().AppendBookingTx(gomock.Any(), gomock.Any(), guestID, gomock.Any()).Return(nil)
		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.FilterGroup) (model.BookingDetail, error) {
				return model.BookingDetail{Booking: inserted}, nil
			})

		res, err := f.svc.Create(asUser(guestID), createRequest("2024-06-10", "2024-06-11", 1))

		assert.NoError(t, err)
		assert.Equal(t, 200.0, res.TotalPrice)
		assert.Equal(t, 1, res.NumberOfNights)
	})

	t.Run("rejections", func(t *testing.T) {
		unavailable := sampleRoom()
		unavailable.Availability = false

		tests := []struct {
			name     string
			req      dto.CreateBookingRequest
			room     roomModel.Room
			expected string
			code     int
		}{
			{
				name:     "unknown room",
				req:      createRequest("2024-06-10", "2024-06-12", 2),
				room:     roomModel.Room{},
				expected: "Room not found",
				code:     http.StatusNotFound,
			},
			{
				name:     "room out of service",
				req:      createRequest("2024-06-10", "2024-06-12", 2),
				room:     unavailable,
				expected: "Room is not available",
				code:     http.StatusBadRequest,
			},
			{
				name:     "too many guests",
				req:      createRequest("2024-06-10", "2024-06-12", 3),
				room:     sampleRoom(),
				expected: "Room capacity is 2 guests",
				code:     http.StatusBadRequest,
			},
			{
				name:     "same day checkout",
				req:      createRequest("2024-06-10", "2024-06-10", 1),
				room:     sampleRoom(),
				expected: "Check-out date must be after check-in date",
				code:     http.StatusBadRequest,
			},
			{
				name:     "checkout before checkin",
				req:      createRequest("2024-06-12", "2024-06-10", 1),
				room:     sampleRoom(),
				expected: "Check-out date must be after check-in date",
				code:     http.StatusBadRequest,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(t)

				f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.room, nil)

				_, err := f.svc.Create(asUser(guestID), tt.req)

				assert.EqualError(t, err, tt.expected)
				assert.Equal(t, tt.code, failure.GetCode(err))
			})
		}
	})

	t.Run("actor without an account", func(t *testing.T) {
		for _, actor := range []string{constant.ContextSystem, ""} {
			f := newFixture(t)

			_, err := f.svc.Create(asUser(actor), createRequest("2024-06-10", "2024-06-12", 2))

			assert.EqualError(t, err, "Bookings must be made by a signed-in guest")
			assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
		}
	})

	t.Run("unparseable date never reaches the database", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(asUser(guestID), createRequest("next tuesday", "2024-06-12", 1))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("check constraint surfaces as bad request", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleRoom(), nil)
		f.runTx()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23514"})

		_, err := f.svc.Create(asUser(guestID), createRequest("2024-06-10", "2024-06-12", 2))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("failed link rolls the booking back", func(t *testing.T) {
		f := newFixture(t)

		f.roomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleRoom(), nil)
		f.runTx()
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.userRepo.EXPECT().AppendBookingTx(gomock.Any(), gomock.Any(), guestID, gomock.Any()).Return(errors.New("no such user"))

		_, err := f.svc.Create(asUser(guestID), createRequest("2024-06-10", "2024-06-12", 2))

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestGetAll(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
			assert.Equal(t, "bookings.created_at", params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Empty(t, filter.Filters)

			return []model.BookingDetail{sampleDetail(guestID), sampleDetail(otherID)}, nil
		})

	res, err := f.svc.GetAll(asUser(guestID))

	assert.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestGetMine(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAllDetail(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.BookingDetail, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "(bookings.user_id = :user_id)", where)
			assert.Equal(t, guestID, args["user_id"])

			return nil, nil
		})

	res, err := f.svc.GetMine(asUser(guestID))

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		caller   string
		detail   model.BookingDetail
		repoErr  error
		expected int
	}{
		{name: "owner reads own booking", caller: guestID, detail: sampleDetail(guestID)},
		{name: "someone else is forbidden", caller: otherID, detail: sampleDetail(guestID), expected: http.StatusForbidden},
		{name: "missing booking", caller: guestID, detail: model.BookingDetail{}, expected: http.StatusNotFound},
		{name: "database failure", caller: guestID, repoErr: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(tt.detail, tt.repoErr)

			res, err := f.svc.Get(asUser(tt.caller), bookedID)

			if tt.expected != 0 {
				assert.Equal(t, tt.expected, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, bookedID, res.ID)
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Run("empty body is rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Update(asUser(otherID), bookedID, dto.UpdateBookingRequest{})

		assert.ErrorIs(t, err, failure.EmptyUpdateError)
	})

	t.Run("admin confirms any booking", func(t *testing.T) {
		f := newFixture(t)

		confirmed := sampleDetail(guestID)
		confirmed.Status = model.StatusConfirmed
		confirmed.PaymentStatus = model.PaymentPaid

		status := model.StatusConfirmed
		paid := model.PaymentPaid

		gomock.InOrder(
			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(sampleDetail(guestID), nil),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, &status, fields[model.FieldStatus])
					assert.Equal(t, &paid, fields[model.FieldPaymentStatus])
					assert.Equal(t, otherID, fields[constant.FieldModifiedBy])

					return nil
				}),
			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(confirmed, nil),
		)

		res, err := f.svc.Update(asUser(otherID), bookedID, dto.UpdateBookingRequest{Status: &status, PaymentStatus: &paid})

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusConfirmed), res.Status)
		assert.Equal(t, string(model.PaymentPaid), res.PaymentStatus)
		assert.Equal(t, event.TypeUpdated, f.nextEvent(t).Type)
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		status := model.StatusCompleted

		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(model.BookingDetail{}, nil)

		_, err := f.svc.Update(asUser(otherID), bookedID, dto.UpdateBookingRequest{Status: &status})

		assert.EqualError(t, err, "Booking not found")
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels and the record stays", func(t *testing.T) {
		f := newFixture(t)

		cancelled := sampleDetail(guestID)
		cancelled.Status = model.StatusCancelled

		gomock.InOrder(
			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(sampleDetail(guestID), nil),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					status, ok := fields[model.FieldStatus].(*model.Status)

					assert.True(t, ok)
					assert.Equal(t, model.StatusCancelled, *status)
					assert.NotContains(t, fields, model.FieldPaymentStatus)

					return nil
				}),
			f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(cancelled, nil),
		)

		res, err := f.svc.Cancel(asUser(guestID), bookedID)

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusCancelled), res.Status)
		assert.Equal(t, event.TypeCancelled, f.nextEvent(t).Type)
	})

	t.Run("only the owner may cancel", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetDetail(gomock.Any(), gomock.Any()).Return(sampleDetail(guestID), nil)

		_, err := f.svc.Cancel(asUser(otherID), bookedID)

		assert.EqualError(t, err, "Not authorized to cancel this booking")
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}
