package auth

import (
	"net/http"
	"skyline/infras/otel"
	"skyline/internal/domains/auth/model/dto"
	"skyline/internal/domains/auth/service"
	"skyline/shared/constant"
	"skyline/transport/http/request"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the public account routes on the /users group.
func (handler *Handler) Router(r chi.Router) {
	r.Post("/signup", handler.Signup)
	r.Post("/signin", handler.Signin)
	r.Post("/refresh-token", handler.RefreshToken)
}

// Signup handles user registration
// @Summary Register a new guest
// @Description Creates a guest account and signs it in.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/signup [post]
func (handler *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signup")
	defer scope.End()

	var req dto.SignupRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Signup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign up")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User registered successfully")

	response.WithJSONMessage(w, http.StatusCreated, "User registered successfully", res)
}

// Signin handles user login
// @Summary Sign in
// @Description Exchanges email and password for an access and refresh token.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "Signin Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/users/signin [post]
func (handler *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Signin")
	defer scope.End()

	var req dto.SigninRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Signin(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sign in")

		response.WithError(w, err)

		return
	}

	response.WithJSONMessage(w, http.StatusOK, "Login successful", res)
}

// RefreshToken handles token refresh
// @Summary Refresh tokens
// @Description Exchanges a valid refresh token for a new token pair.
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[jwt.TokenPair]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /api/users/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	var req dto.RefreshTokenRequest
	if err := request.Body(r, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	tokens, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tokens)
}
