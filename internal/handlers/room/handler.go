package room

import (
	"net/http"
	"skyline/infras/otel"
	"skyline/internal/domains/room/model/dto"
	"skyline/internal/domains/room/service"
	"skyline/shared/constant"
	"skyline/transport/http/request"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgRoomNotFound = "Room not found"

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/featured/list", handler.GetFeaturedRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Put("/{id}", handler.UpdateRoom)
		routerGroup.Put("/{id}/image", handler.UploadRoomImage)
		routerGroup.Delete("/{id}", handler.DeleteRoom)
	})
}

// GetRooms lists rooms matching the query filters.
// @Summary List rooms
// @Description Every filter is optional. Results are newest first.
// @Tags Room
// @Produce json
// @Param type query string false "Room type" Enums(Single, Double, Suite, Deluxe, Presidential)
// @Param availability query boolean false "Bookable rooms only"
// @Param featured query boolean false "Featured rooms only"
// @Param minPrice query number false "Lowest nightly price"
// @Param maxPrice query number false "Highest nightly price"
// @Success 200 {object} response.List[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	var query dto.RoomQuery
	if err := query.FromValues(r.URL.Query()); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, rooms)
}

// GetFeaturedRooms lists the best rated featured rooms.
// @Summary List featured rooms
// @Description Up to five featured and available rooms, highest rating first.
// @Tags Room
// @Produce json
// @Success 200 {object} response.List[dto.RoomResponse]
// @Failure 500 {object} response.Error
// @Router /api/rooms/featured/list [get]
func (handler *Handler) GetFeaturedRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFeaturedRooms")
	defer scope.End()

	rooms, err := handler.service.GetFeatured(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get featured rooms")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := request.ID(r, msgRoomNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Omitted optional fields take their defaults.
// @Tags Room
// @Accept json
// @Produce json
// @Param body body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	var req dto.CreateRoomRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room created successfully by user " + user)

	response.WithJSONMessage(w, http.StatusCreated, "Room created successfully", room)
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Description Only the supplied fields change.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param body body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := request.ID(r, msgRoomNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateRoomRequest
	if err = request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	room, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithJSONMessage(w, http.StatusOK, "Room updated successfully", room)
}

// UploadRoomImage replaces the picture of a room.
// @Summary Upload a room image
// @Description Send the file as the multipart part "image", or a JSON body {"image": "data:image/png;base64,..."}.
// @Tags Room
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param image formData file false "Room image (png, jpg, jpeg, webp; 2 MB max)"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id}/image [put]
// @Security BearerAuth
func (handler *Handler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImage")
	defer scope.End()

	id, err := request.ID(r, msgRoomNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	upload, err := request.Image(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if upload.IsMultipart() {
		defer upload.ImageFile.Close()
	}

	room, err := handler.service.UploadImage(ctx, id, upload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Room image uploaded successfully", room)
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Description Bookings of the room are kept.
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := request.ID(r, msgRoomNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
