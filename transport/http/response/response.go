package response

import (
	"encoding/json"
	"net/http"
	"reflect"
	"skyline/shared/constant"
	"skyline/shared/failure"
	"skyline/shared/logger"
)

// Envelope is the body of every JSON response the API writes.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Data documents a successful single-record response.
type Data[T any] struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty"`
	Data    T      `json:"data"`
}

// List documents a successful collection response.
type List[T any] struct {
	Success bool `json:"success" example:"true"`
	Count   int  `json:"count"   example:"1"`
	Data    []T  `json:"data"`
}

type Message struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

type Error struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: isSuccess(code), Message: message})
}

// WithJSON sends a single record
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Envelope{Success: true, Data: payload})
}

// WithJSONMessage sends a single record alongside a message
func WithJSONMessage(writer http.ResponseWriter, code int, message string, payload any) {
	response(writer, code, Envelope{Success: true, Message: message, Data: payload})
}

// WithList sends a collection with its element count. A nil slice is written as [].
func WithList[T any](writer http.ResponseWriter, code int, items []T) {
	if items == nil {
		items = []T{}
	}

	count := len(items)

	response(writer, code, Envelope{Success: true, Count: &count, Data: items})
}

// WithError sends the failure carried by err. Internal errors never leak their text.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	msg := err.Error()
	if code >= http.StatusInternalServerError {
		logger.ErrorWithStack(err)

		msg = constant.ResponseErrorInternal
	}

	response(writer, code, Envelope{Success: false, Message: msg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func isSuccess(code int) bool {
	return code < http.StatusBadRequest
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	if payload.Data != nil {
		// a typed nil slice should still serialise as []
		if v := reflect.ValueOf(payload.Data); v.Kind() == reflect.Slice && v.IsNil() {
			payload.Data = []any{}
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}
