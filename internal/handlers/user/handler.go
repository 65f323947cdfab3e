package user

import (
	"net/http"
	"skyline/infras/otel"
	"skyline/internal/domains/user/model/dto"
	"skyline/internal/domains/user/service"
	"skyline/shared/constant"
	"skyline/transport/http/request"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the signed-in routes on the /users group.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/profile", handler.GetProfile)
	router.Put("/profile", handler.UpdateProfile)
	router.Get("/", handler.GetUsers)
}

// GetProfile returns the caller's own account.
// @Summary Get my profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/users/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := handler.service.GetProfile(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, user)
}

// UpdateProfile changes the caller's own account.
// @Summary Update my profile
// @Description A new password is hashed before it is stored. A new email must not belong to another account.
// @Tags User
// @Accept json
// @Produce json
// @Param body body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /api/users/profile [put]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	var req dto.UpdateProfileRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	user, err := handler.service.UpdateProfile(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Profile updated successfully", user)
}

// GetUsers lists every account.
// @Summary List users
// @Tags User
// @Produce json
// @Success 200 {object} response.List[dto.UserResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /api/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	users, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithList(w, http.StatusOK, users)
}
