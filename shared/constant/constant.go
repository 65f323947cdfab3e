package constant

import "time"

// ContextSystem is the actor recorded for seeding and API key calls.
const ContextSystem = "system"

type contextKey string

// Request scoped values set by the auth middleware.
const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	RequestParamID       = "id"
	RequestParamCategory = "category"
	RequestMaxMemory     = 10 << 20
	FormFile             = "image"
)

// Audit columns shared by every table.
const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

// Postgres SQLSTATE codes mapped to 400s.
const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeCheckViolation  = "23514"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	HoursPerDay    = 24
)

// Tracer scope names, one per layer.
const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelS3ScopeName         = "s3"
	OtelJWTScopeName        = "jwt"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorInternal             = "Internal server error"
	ResponseErrorRouteNotFound        = "Route not found"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
	ResponseErrorRequestLimitExceeded = "Too many requests, please try again later"
	ResponseErrorPrepareShutdown      = "Server is shutting down"
	ResponseErrorUnhealthy            = "Server is unhealthy"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Wildcard = "*"
	Empty    = ""
)
