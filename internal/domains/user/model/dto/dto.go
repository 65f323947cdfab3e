package dto

import (
	"strings"

	"skyline/internal/domains/user/model"
	gDto "skyline/shared/dto"
)

// UpdateProfileRequest carries the self-service profile changes. Password is plaintext on the
// way in and replaced by its hash before the fields are written.
type UpdateProfileRequest struct {
	Name     string  `db:"name"     json:"name"     validate:"omitempty,min=2,max=50"`
	Email    string  `db:"email"    json:"email"    validate:"omitempty,email"`
	Phone    *string `db:"phone"    json:"phone"    validate:"omitempty,max=20"`
	Password string  `db:"password" json:"password" validate:"omitempty,min=6,max=72"`
}

func (u *UpdateProfileRequest) Normalize() {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = NormalizeEmail(u.Email)

	if u.Phone != nil {
		phone := strings.TrimSpace(*u.Phone)
		u.Phone = &phone
	}
}

// NormalizeEmail gives the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    *string  `json:"phone,omitempty"`
	Role     string   `json:"role"`
	Bookings []string `json:"bookings"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = string(model.Role)
	r.Bookings = []string(model.Bookings)
	r.Metadata.FromModel(model.Metadata)

	if r.Bookings == nil {
		r.Bookings = []string{}
	}
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
