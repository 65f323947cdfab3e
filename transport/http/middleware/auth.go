package middleware

import (
	"context"
	"errors"
	"net/http"
	"skyline/config"
	"skyline/infras/jwt"
	"skyline/infras/otel"
	"skyline/permissions"
	"skyline/shared/constant"
	"skyline/shared/failure"
	"skyline/transport/http/response"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type SkipAuthKey string

const skipAuth = SkipAuthKey("skip")

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// route resolves the pattern chi will dispatch the request to, such as /api/rooms/{id}.
// ok is false when nothing matches, leaving the 404 or 405 to the router.
func route(r *http.Request) (pattern string, ok bool) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return "", false
	}

	pattern = rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
	if pattern == "" {
		return "", false
	}

	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	return pattern, true
}

func (m *authRoleImpl) lookup(r *http.Request) (permissions.Permission, bool) {
	pattern, ok := route(r)
	if !ok {
		return permissions.Permission{}, false
	}

	if m.permission == nil {
		return permissions.Permission{Path: pattern, Method: r.Method}, true
	}

	return m.permission.FindPermissions(pattern, r.Method), true
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuth).(bool)

	return skip
}

// Auth validates the bearer access token and puts its claims on the request context.
// Routes marked skip in permissions.json are public.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		permission, matched := m.lookup(request)
		if skipped(ctx) || !matched || permission.Skip {
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       permission.Path,
			"http.method":     request.Method,
		})

		fail := func(message string) {
			err := failure.Unauthorized(message)
			scope.TraceError(err)
			response.WithError(writer, err)
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			fail("Not authorized, no token")

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			fail("Invalid authorization header format")

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				fail("Token has expired")
			case errors.Is(err, jwt.ErrInvalidClaim):
				fail("Invalid token claims")
			default:
				fail("Not authorized, token failed")
			}

			return
		}

		if claims.UserID == "" || claims.Email == "" {
			log.Error().Str("tokenId", claims.TokenID).Msg("JWT claims missing user id or email")
			fail("Invalid token claims")

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller's role against the roles listed for the route.
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		permission, matched := m.lookup(request)
		if skipped(ctx) || !matched || permission.Skip || len(permission.Permissions) == 0 {
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

// APIKey for internal service-to-service authentication using API key
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || apiKey != m.cfg.App.APIKey {
			scope.TraceError(failure.ForbiddenError)
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		ctx = context.WithValue(ctx, skipAuth, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ContextSystem)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
