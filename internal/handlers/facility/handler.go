package facility

import (
	"net/http"
	"skyline/infras/otel"
	"skyline/internal/domains/facility/model/dto"
	"skyline/internal/domains/facility/service"
	"skyline/shared/constant"
	"skyline/transport/http/request"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgFacilityNotFound = "Facility not found"

type Handler struct {
	service service.Facility
	otel    otel.Otel
}

func New(service service.Facility, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/facilities", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFacilities)
		routerGroup.Get("/{id}", handler.GetFacilityByID)
		routerGroup.Post("/", handler.CreateFacility)
		routerGroup.Put("/{id}", handler.UpdateFacility)
		routerGroup.Delete("/{id}", handler.DeleteFacility)
	})
}

// GetFacilities lists hotel facilities.
// @Summary List facilities
// @Tags Facility
// @Produce json
// @Param category query string false "Category" Enums(Recreation, Services, Dining, Business, Other)
// @Param available query boolean false "Open facilities only"
// @Success 200 {object} response.List[dto.FacilityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/facilities [get]
func (handler *Handler) GetFacilities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilities")
	defer scope.End()

	var query dto.FacilityQuery
	if err := query.FromValues(r.URL.Query()); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	facilities, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facilities")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, facilities)
}

// GetFacilityByID
// @Summary Get a facility by ID
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Data[dto.FacilityResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/facilities/{id} [get]
func (handler *Handler) GetFacilityByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFacilityByID")
	defer scope.End()

	id, err := request.ID(r, msgFacilityNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	facility, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get facility by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, facility)
}

// CreateFacility
// @Summary Create a facility
// @Tags Facility
// @Accept json
// @Produce json
// @Param body body dto.CreateFacilityRequest true "Facility"
// @Success 201 {object} response.Data[dto.FacilityResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/facilities [post]
// @Security BearerAuth
func (handler *Handler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFacility")
	defer scope.End()

	var req dto.CreateFacilityRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	facility, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create facility")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusCreated, "Facility created successfully", facility)
}

// UpdateFacility
// @Summary Update a facility
// @Tags Facility
// @Accept json
// @Produce json
// @Param id path string true "Facility ID"
// @Param body body dto.UpdateFacilityRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.FacilityResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/facilities/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFacility")
	defer scope.End()

	id, err := request.ID(r, msgFacilityNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateFacilityRequest
	if err = request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	facility, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update facility")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Facility updated successfully", facility)
}

// DeleteFacility
// @Summary Delete a facility
// @Tags Facility
// @Produce json
// @Param id path string true "Facility ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/facilities/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFacility")
	defer scope.End()

	id, err := request.ID(r, msgFacilityNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete facility")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Facility deleted successfully")
}
