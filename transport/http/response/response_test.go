package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"skyline/shared/failure"
	"skyline/transport/http/response"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"name": "Garden Suite"})

	body := decode(t, rec)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Garden Suite", body["data"].(map[string]any)["name"])
	assert.NotContains(t, body, "count")
	assert.NotContains(t, body, "message")
}

func TestWithList(t *testing.T) {
	t.Run("counts items", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithList(rec, http.StatusOK, []string{"a", "b"})

		body := decode(t, rec)

		assert.Equal(t, float64(2), body["count"])
		assert.Len(t, body["data"], 2)
	})

	t.Run("nil slice is an empty array with zero count", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithList[string](rec, http.StatusOK, nil)

		assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
	})
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		expected string
	}{
		{name: "not found", err: failure.NotFound("Room not found"), code: http.StatusNotFound, expected: "Room not found"},
		{name: "bad request", err: failure.BadRequestFromString("name is required"), code: http.StatusBadRequest, expected: "name is required"},
		{name: "forbidden", err: failure.Forbidden("Not authorized to access this booking"), code: http.StatusForbidden, expected: "Not authorized to access this booking"},
		{name: "internal text is masked", err: errors.New(`pq: relation "rooms" does not exist`), code: http.StatusInternalServerError, expected: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			body := decode(t, rec)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.expected, body["message"])
		})
	}
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Too many requests, please try again later"}`, rec.Body.String())
}
