package dto

import (
	"strings"

	"skyline/infras/jwt"
	userModel "skyline/internal/domains/user/model"
	userDto "skyline/internal/domains/user/model/dto"
	gModel "skyline/shared/model"
	"skyline/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SignupRequest struct {
	Name     string  `json:"name"     validate:"required,min=2,max=50"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6,max=72"`
	Phone    *string `json:"phone"    validate:"omitempty,max=20"`
}

func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = userDto.NormalizeEmail(r.Email)

	if r.Phone != nil {
		phone := strings.TrimSpace(*r.Phone)
		r.Phone = &phone
	}
}

func (r *SignupRequest) ToUserModel(hashedPassword string, role userModel.Role) userModel.User {
	id := uuid.NewString()

	return userModel.User{
		ID:       id,
		Name:     r.Name,
		Email:    r.Email,
		Password: hashedPassword,
		Phone:    r.Phone,
		Role:     role,
		Bookings: pq.StringArray{},
		Metadata: gModel.NewMetadata(timezone.Now(), id),
	}
}

type SigninRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *SigninRequest) Normalize() {
	r.Email = userDto.NormalizeEmail(r.Email)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthResponse is returned by signup and signin: the profile plus a fresh token pair.
type AuthResponse struct {
	User userDto.UserResponse `json:"user"`
	jwt.TokenPair
}

func (a *AuthResponse) From(user userModel.User, tokenPair *jwt.TokenPair) {
	a.User.FromModel(user)
	a.TokenPair = *tokenPair
}
