package router

import (
	"net/http"
	_ "skyline/docs" // registers the swagger document
	"skyline/internal/handlers/auth"
	"skyline/internal/handlers/booking"
	"skyline/internal/handlers/facility"
	"skyline/internal/handlers/food"
	"skyline/internal/handlers/room"
	"skyline/internal/handlers/user"
	"skyline/shared/constant"
	"skyline/transport/http/middleware"
	"skyline/transport/http/response"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	apiVersion     = "1.0.0"
	welcomeMessage = "Welcome to Skyline Retreat Hotel API"
)

type DomainHandlers struct {
	Auth     auth.Handler
	User     user.Handler
	Room     room.Handler
	Facility facility.Handler
	Food     food.Handler
	Booking  booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

type welcome struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// SetupRoutes mounts every API route. Authentication runs inside /api only, so the
// welcome page, health check and docs stay public.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		chiMiddleware.RequestID,
		chiMiddleware.RealIP,
		chiMiddleware.Recoverer,
		r.App.Tracing,
		r.App.CORS(),
		r.App.RateLimit(),
	)

	router.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusNotFound, constant.ResponseErrorRouteNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithMessage(w, http.StatusMethodNotAllowed, constant.ResponseErrorMethodNotAllowed)
	})

	router.Get("/", r.Welcome)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey, r.AuthRole.Auth, r.AuthRole.RBAC)

		routerGroup.Route("/users", func(users chi.Router) {
			r.DomainHandlers.Auth.Router(users)
			r.DomainHandlers.User.Router(users)
		})
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Facility.Router(routerGroup)
		r.DomainHandlers.Food.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

// Welcome describes the API and where each resource lives.
// @Summary API index
// @Tags Meta
// @Produce json
// @Success 200 {object} welcome
// @Router / [get]
func (r *Router) Welcome(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, welcome{
		Message: welcomeMessage,
		Version: apiVersion,
		Endpoints: map[string]string{
			"users":      "/api/users",
			"rooms":      "/api/rooms",
			"facilities": "/api/facilities",
			"food":       "/api/food",
			"bookings":   "/api/bookings",
		},
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
