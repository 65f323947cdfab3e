package validator_test

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"skyline/shared/failure"
	"skyline/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type bedType string

func (b bedType) Valid() bool {
	return b == "King" || b == "Queen"
}

type roomRequest struct {
	Name     string   `json:"name" validate:"required"`
	Email    string   `json:"email" validate:"omitempty,email"`
	Price    float64  `json:"price" validate:"gte=0"`
	Capacity int      `json:"capacity" validate:"gte=1"`
	Bed      bedType  `json:"bed" validate:"enum"`
	Extra    *bedType `json:"extra" validate:"omitempty,enum"`
}

func validRoom() roomRequest {
	return roomRequest{Name: "Garden Suite", Price: 120, Capacity: 2, Bed: "King"}
}

func TestValidateStruct(t *testing.T) {
	queen := bedType("Queen")
	bunk := bedType("Bunk")

	tests := []struct {
		name    string
		mutate  func(r *roomRequest)
		wantMsg string
	}{
		{name: "valid", mutate: func(_ *roomRequest) {}},
		{name: "valid optional enum", mutate: func(r *roomRequest) { r.Extra = &queen }},
		{name: "missing name", mutate: func(r *roomRequest) { r.Name = "" }, wantMsg: "name is required"},
		{name: "bad email", mutate: func(r *roomRequest) { r.Email = "nope" }, wantMsg: "email must be a valid email address"},
		{name: "negative price", mutate: func(r *roomRequest) { r.Price = -1 }, wantMsg: "price must be greater than or equal to 0"},
		{name: "zero capacity", mutate: func(r *roomRequest) { r.Capacity = 0 }, wantMsg: "capacity must be greater than or equal to 1"},
		{name: "unknown enum", mutate: func(r *roomRequest) { r.Bed = "Bunk" }, wantMsg: "bed has an invalid value Bunk"},
		{name: "unknown optional enum", mutate: func(r *roomRequest) { r.Extra = &bunk }, wantMsg: "extra has an invalid value Bunk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRoom()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	var req roomRequest

	err := validator.Validate(strings.NewReader(`{"name":"Ocean Deluxe","price":200,"capacity":3,"bed":"Queen"}`), &req)
	assert.NoError(t, err)
	assert.Equal(t, "Ocean Deluxe", req.Name)

	err = validator.Validate(strings.NewReader(`{"name":`), &req)
	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Contains(t, err.Error(), "failed to decode request body")
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("550e8400-e29b-41d4-a716-446655440000", "uuid"))
	assert.EqualError(t, validator.ValidateVar("room-1", "uuid"), "value must be a valid id")
	assert.NoError(t, validator.ValidateVar("data:image/png;base64,iVBORw0KGgo=", "mimetypes=image/png"))
	assert.Error(t, validator.ValidateVar("not-a-data-uri", "mimetypes=image/png"))
}

type uploadRequest struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

func TestValidateStruct_FileHeader(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		wantMsg     string
	}{
		{name: "png within limit", contentType: "image/png", size: 1024},
		{name: "wrong type", contentType: "application/pdf", size: 1024, wantMsg: "image must be one of image/png image/jpeg"},
		{name: "too large", contentType: "image/jpeg", size: 3 * 1024 * 1024, wantMsg: "image must not exceed 2 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := uploadRequest{Image: &multipart.FileHeader{
				Filename: "room.png",
				Header:   textproto.MIMEHeader{"Content-Type": []string{tt.contentType}},
				Size:     tt.size,
			}}

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMsg)
		})
	}

	assert.EqualError(t, validator.ValidateStruct(&uploadRequest{}), "image is required")
}
