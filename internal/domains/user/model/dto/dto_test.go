package dto_test

import (
	"encoding/json"
	"strings"
	"testing"

	"skyline/internal/domains/user/model"
	"skyline/internal/domains/user/model/dto"
	"skyline/shared"
	"skyline/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestUserResponse_NeverExposesPassword(t *testing.T) {
	var res dto.UserResponse

	res.FromModel(model.User{
		ID:       "user-id",
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "$2a$12$hash",
		Role:     model.RoleUser,
	})

	raw, err := json.Marshal(res)

	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$12$hash")
	assert.Contains(t, string(raw), `"bookings":[]`)
}

func TestUpdateProfileRequest_Normalize(t *testing.T) {
	req := dto.UpdateProfileRequest{
		Name:  "  Jane Doe ",
		Email: " Jane@Example.COM ",
		Phone: shared.Ptr(" +62 811 "),
	}

	req.Normalize()

	assert.Equal(t, "Jane Doe", req.Name)
	assert.Equal(t, "jane@example.com", req.Email)
	assert.Equal(t, "+62 811", *req.Phone)
}

func TestUpdateProfileRequest_PasswordLength(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&dto.UpdateProfileRequest{}))
	assert.NoError(t, validator.ValidateStruct(&dto.UpdateProfileRequest{Password: strings.Repeat("a", 72)}))
	assert.EqualError(t, validator.ValidateStruct(&dto.UpdateProfileRequest{Password: strings.Repeat("a", 80)}), "password must be at most 72")
}
