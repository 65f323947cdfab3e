// Package permissions maps every API route to the roles allowed to call it.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route entry. Skip marks a public route; an empty role list
// admits any signed-in caller.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// PermissionData is the whole table. Skip disables authentication for every route,
// which is only meant for local development.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func key(path, method string) string {
	return method + " " + path
}

// FindPermissions returns the entry for a route pattern. Unknown routes get a zero
// Permission, which means signed-in callers only.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.Skip {
		return Permission{Path: path, Method: method, Skip: true}
	}

	permission, ok := r.index[key(path, method)]
	if !ok {
		return Permission{Path: path, Method: method}
	}

	return permission
}

// Parse decodes a permissions table and rejects duplicate or malformed entries.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		if endpoint.Path == "" || !validMethod(endpoint.Method) {
			return nil, fmt.Errorf("invalid permission entry %q %q", endpoint.Method, endpoint.Path)
		}

		k := key(endpoint.Path, endpoint.Method)
		if _, exists := permissions.index[k]; exists {
			return nil, fmt.Errorf("duplicate permission entry %s", k)
		}

		permissions.index[k] = endpoint
	}

	return &permissions, nil
}

func validMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// Get loads the embedded table. A broken table is fatal at boot rather than a silent
// lock-out at request time.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
