package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skyline/permissions"
)

func TestGet(t *testing.T) {
	table := permissions.Get()

	tests := []struct {
		name   string
		method string
		path   string
		skip   bool
		roles  []string
	}{
		{name: "room list is public", method: "GET", path: "/api/rooms", skip: true},
		{name: "room create is admin only", method: "POST", path: "/api/rooms", roles: []string{"admin"}},
		{name: "booking update is admin only", method: "PUT", path: "/api/bookings/{id}", roles: []string{"admin"}},
		{name: "my bookings needs a signed in caller", method: "GET", path: "/api/bookings/my-bookings", roles: []string{"user", "admin"}},
		{name: "signup is public", method: "POST", path: "/api/users/signup", skip: true},
		{name: "unlisted route needs a signed in caller", method: "PATCH", path: "/api/rooms/{id}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := table.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, permission.Skip)
			assert.ElementsMatch(t, tt.roles, permission.Permissions)
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("duplicate entry", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[
			{"path":"/api/rooms","method":"GET","skip":true},
			{"path":"/api/rooms","method":"GET","skip":false}
		]}`))

		assert.ErrorContains(t, err, "duplicate permission entry GET /api/rooms")
	})

	t.Run("unknown method", func(t *testing.T) {
		_, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/api/rooms","method":"FETCH"}]}`))

		assert.Error(t, err)
	})

	t.Run("global skip opens every route", func(t *testing.T) {
		table, err := permissions.Parse([]byte(`{"skip":true,"endpoints":[{"path":"/api/rooms","method":"POST","permissions":["admin"]}]}`))

		assert.NoError(t, err)
		assert.True(t, table.FindPermissions("/api/rooms", "POST").Skip)
	})
}
