// file: internals/helpers/auth/auth_locals.go
package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

/* ============================================
   Locals Keys (diisi middleware AuthJWT)
   ============================================ */

const (
	LocRole   = "role"    // legacy single role
	LocUserID = "user_id" // string UUID

	LocRolesGlobal    = "roles_global"     // []string
	LocIsOwner        = "is_owner"         // bool | "true"/"false"
	LocActiveSchoolID = "active_school_id" // string UUID
	LocSchoolID       = "school_id"        // string UUID (alias lama)
)

var ErrNoSchoolScope = errors.New("no school scope in token")

/* ============================================
   Resolver scope tenant
   ============================================ */

// GetSchoolIDFromToken mengambil school_id aktif dari locals.
// SEMUA query tenant-scoped harus berangkat dari sini — bukan dari body.
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	for _, key := range []string{LocActiveSchoolID, LocSchoolID} {
		if v := c.Locals(key); v != nil {
			if s, ok := v.(string); ok {
				if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil && id != uuid.Nil {
					return id, nil
				}
			}
			if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
				return id, nil
			}
		}
	}
	return uuid.Nil, ErrNoSchoolScope
}

/* ============================================
   Role helpers
   ============================================ */

// IsOwner — owner global (super-admin lintas tenant).
func IsOwner(c *fiber.Ctx) bool {
	switch v := c.Locals(LocIsOwner).(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "1" || s == "yes"
	}
	return hasGlobalRole(c, constants.RoleOwner)
}

// IsSchoolAdmin — admin pada tenant aktif.
func IsSchoolAdmin(c *fiber.Ctx) bool {
	if IsOwner(c) {
		return true
	}
	if r, ok := c.Locals(LocRole).(string); ok {
		if strings.EqualFold(strings.TrimSpace(r), constants.RoleAdmin) {
			return true
		}
	}
	return hasGlobalRole(c, constants.RoleAdmin)
}

func hasGlobalRole(c *fiber.Ctx, want string) bool {
	v := c.Locals(LocRolesGlobal)
	if v == nil {
		return false
	}
	switch roles := v.(type) {
	case []string:
		for _, r := range roles {
			if strings.EqualFold(strings.TrimSpace(r), want) {
				return true
			}
		}
	case []interface{}:
		for _, r := range roles {
			if s, ok := r.(string); ok && strings.EqualFold(strings.TrimSpace(s), want) {
				return true
			}
		}
	}
	return false
}
