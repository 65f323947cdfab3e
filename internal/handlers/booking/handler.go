package booking

import (
	"net/http"
	"skyline/infras/otel"
	"skyline/internal/domains/booking/model/dto"
	"skyline/internal/domains/booking/service"
	"skyline/shared/constant"
	"skyline/transport/http/request"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgBookingNotFound = "Booking not found"

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/my-bookings", handler.GetMyBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Put("/{id}", handler.UpdateBooking)
		routerGroup.Delete("/{id}", handler.CancelBooking)
	})
}

// CreateBooking reserves a room for the caller.
// @Summary Book a room
// @Description The total price is the number of nights times the nightly rate. Dates are YYYY-MM-DD or RFC3339.
// @Tags Booking
// @Accept json
// @Produce json
// @Param body body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	var req dto.CreateBookingRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created " + booking.ID)

	response.WithJSONMessage(w, http.StatusCreated, "Booking created successfully", booking)
}

// GetBookings lists every booking.
// @Summary List all bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.List[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /api/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	bookings, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, bookings)
}

// GetMyBookings lists the caller's bookings.
// @Summary List my bookings
// @Tags Booking
// @Produce json
// @Success 200 {object} response.List[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Router /api/bookings/my-bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	bookings, err := handler.service.GetMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get my bookings")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, bookings)
}

// GetBookingByID
// @Summary Get one of my bookings
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	id, err := request.ID(r, msgBookingNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking changes the status of a booking.
// @Summary Update booking status
// @Description Any status may follow any other.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body dto.UpdateBookingRequest true "Status change"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id, err := request.ID(r, msgBookingNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateBookingRequest
	if err = request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Booking updated successfully", booking)
}

// CancelBooking cancels one of the caller's bookings. The record is kept.
// @Summary Cancel my booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := request.ID(r, msgBookingNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Cancel(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Booking cancelled successfully", booking)
}
