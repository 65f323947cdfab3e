package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	ForbiddenError   = New(http.StatusForbidden, "You don't have the required permissions")
	EmptyUpdateError = New(http.StatusBadRequest, "update request cannot be empty")
)

func New(code int, msg string) *Failure {
	return &Failure{Code: code, Message: msg}
}

func (e *Failure) Error() string {
	return e.Message
}

// fromError keeps a nil error nil so callers can wrap unconditionally.
func fromError(code int, err error) error {
	if err == nil {
		return nil
	}

	return New(code, err.Error())
}

func BadRequest(err error) error {
	return fromError(http.StatusBadRequest, err)
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(http.StatusForbidden, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func InternalError(err error) error {
	return fromError(http.StatusInternalServerError, err)
}

// GetCode unwraps err looking for a Failure; anything else is a 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
