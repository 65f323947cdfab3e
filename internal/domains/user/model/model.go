package model

import (
	"skyline/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldRole     = "role"
	FieldBookings = "bookings"

	// shared with auth and booking, which also change user records
	CacheKeyGet    = "user:get"
	CacheKeyGetAll = "user:gets"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID       string         `db:"id"`
	Name     string         `db:"name"`
	Email    string         `db:"email"`
	Password string         `db:"password"`
	Phone    *string        `db:"phone"`
	Role     Role           `db:"role"`
	Bookings pq.StringArray `db:"bookings"`
	model.Metadata
}
