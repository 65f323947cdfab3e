package food

import (
	"fmt"
	"net/http"
	"skyline/infras/otel"
	"skyline/internal/domains/food/model"
	"skyline/internal/domains/food/model/dto"
	"skyline/internal/domains/food/service"
	"skyline/shared/constant"
	"skyline/shared/failure"
	"skyline/transport/http/request"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgFoodNotFound = "Food item not found"

type Handler struct {
	service service.Food
	otel    otel.Otel
}

func New(service service.Food, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/food", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFoods)
		routerGroup.Get("/category/{category}", handler.GetFoodsByCategory)
		routerGroup.Get("/{id}", handler.GetFoodByID)
		routerGroup.Post("/", handler.CreateFood)
		routerGroup.Put("/{id}", handler.UpdateFood)
		routerGroup.Put("/{id}/image", handler.UploadFoodImage)
		routerGroup.Delete("/{id}", handler.DeleteFood)
	})
}

// GetFoods lists menu items.
// @Summary List food items
// @Tags Food
// @Produce json
// @Param category query string false "Category" Enums(Breakfast, Lunch, Dinner, Desserts, Beverages, Snacks)
// @Param cuisine query string false "Cuisine" Enums(Continental, Asian, Italian, Indian, Mexican, Other)
// @Param isVegetarian query boolean false "Vegetarian items only"
// @Param available query boolean false "Orderable items only"
// @Success 200 {object} response.List[dto.FoodResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food [get]
func (handler *Handler) GetFoods(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoods")
	defer scope.End()

	var query dto.FoodQuery
	if err := query.FromValues(r.URL.Query()); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	foods, err := handler.service.GetAll(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food items")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, foods)
}

// GetFoodsByCategory lists the available items of one menu category.
// @Summary List food items by category
// @Tags Food
// @Produce json
// @Param category path string true "Category" Enums(Breakfast, Lunch, Dinner, Desserts, Beverages, Snacks)
// @Success 200 {object} response.List[dto.FoodResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food/category/{category} [get]
func (handler *Handler) GetFoodsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoodsByCategory")
	defer scope.End()

	category := model.Category(chi.URLParam(r, constant.RequestParamCategory))
	if !category.Valid() {
		err := failure.BadRequestFromString(fmt.Sprintf("category has an invalid value %s", category))
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	foods, err := handler.service.GetByCategory(ctx, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food items by category")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, foods)
}

// GetFoodByID
// @Summary Get a food item by ID
// @Tags Food
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} response.Data[dto.FoodResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food/{id} [get]
func (handler *Handler) GetFoodByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFoodByID")
	defer scope.End()

	id, err := request.ID(r, msgFoodNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	food, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get food item by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, food)
}

// CreateFood
// @Summary Create a food item
// @Tags Food
// @Accept json
// @Produce json
// @Param body body dto.CreateFoodRequest true "Food item"
// @Success 201 {object} response.Data[dto.FoodResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food [post]
// @Security BearerAuth
func (handler *Handler) CreateFood(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFood")
	defer scope.End()

	var req dto.CreateFoodRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	food, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create food item")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusCreated, "Food item created successfully", food)
}

// UpdateFood
// @Summary Update a food item
// @Tags Food
// @Accept json
// @Produce json
// @Param id path string true "Food ID"
// @Param body body dto.UpdateFoodRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.FoodResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFood")
	defer scope.End()

	id, err := request.ID(r, msgFoodNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	var req dto.UpdateFoodRequest
	if err = request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	food, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update food item")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Food item updated successfully", food)
}

// UploadFoodImage
// @Summary Upload a food image
// @Description Send the file as the multipart part "image", or a JSON body {"image": "data:image/png;base64,..."}.
// @Tags Food
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param id path string true "Food ID"
// @Param image formData file false "Food image (png, jpg, jpeg, webp; 2 MB max)"
// @Success 200 {object} response.Data[dto.FoodResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food/{id}/image [put]
// @Security BearerAuth
func (handler *Handler) UploadFoodImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadFoodImage")
	defer scope.End()

	id, err := request.ID(r, msgFoodNotFound)
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

	food, err := handler.service.UploadImage(ctx, id, upload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload food image")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Food image uploaded successfully", food)
}

// DeleteFood
// @Summary Delete a food item
// @Tags Food
// @Produce json
// @Param id path string true "Food ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/food/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFood")
	defer scope.End()

	id, err := request.ID(r, msgFoodNotFound)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete food item")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Food item deleted successfully")
}
