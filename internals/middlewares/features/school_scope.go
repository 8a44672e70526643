// file: internals/middlewares/features/school_scope.go
package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helper "schoolku_backend/internals/helpers/auth"
)

/* ==========================
   Ekstraksi school_id dari request
========================== */

// extractSchoolIDStrict hanya balikin kalau benar-benar UUID school_id.
func extractSchoolIDStrict(c *fiber.Ctx) string {
	// 1) param (/:school_id)
	if v := strings.TrimSpace(c.Params("school_id")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 2) header (X-School-ID)
	if v := strings.TrimSpace(c.Get("X-School-ID")); v != "" {
		if _, err := uuid.Parse(v); err == nil {
			return v
		}
	}
	// 3) parse path: /api/a/:school_id/... atau .../schools/:school_id/...
	path := strings.Trim(c.Path(), "/")
	parts := strings.Split(path, "/")
	n := len(parts)
	if n >= 3 && strings.EqualFold(parts[0], "api") &&
		(strings.EqualFold(parts[1], "a") || strings.EqualFold(parts[1], "u")) {
		cand := strings.TrimSpace(parts[2])
		if _, err := uuid.Parse(cand); err == nil {
			return cand
		}
	}
	for i := 0; i < n-1; i++ {
		if strings.EqualFold(parts[i], "schools") {
			cand := strings.TrimSpace(parts[i+1])
			if _, err := uuid.Parse(cand); err == nil {
				return cand
			}
		}
	}
	return ""
}

/* ==========================
   STRICT SCOPE — by PATH + token fallback
========================== */

// UseSchoolScope:
// - Coba ambil school_id dari PATH/param/header (UUID).
// - Kalau kosong, fallback ke token (1 sesi = 1 sekolah).
// - Non-owner: school di path harus sama dengan school di token.
// - Set locals: active_school_id (+ kompat: school_id).
func UseSchoolScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isOwner := helper.IsOwner(c)

		tokenSchool, tokenErr := helper.GetSchoolIDFromToken(c)
		reqSchool := strings.TrimSpace(extractSchoolIDStrict(c))

		if reqSchool == "" {
			if tokenErr != nil || tokenSchool == uuid.Nil {
				return fiber.NewError(fiber.StatusBadRequest, "school_id wajib di path, header, atau token")
			}
			reqSchool = tokenSchool.String()
		}

		// owner boleh beroperasi atas tenant manapun
		if !isOwner {
			if tokenErr != nil || !strings.EqualFold(tokenSchool.String(), reqSchool) {
				return fiber.NewError(fiber.StatusForbidden, "Bukan anggota pada school yang diminta")
			}
		}

		c.Locals(helper.LocActiveSchoolID, reqSchool)
		c.Locals(helper.LocSchoolID, reqSchool)
		return c.Next()
	}
}

// RequirePathScopeMatch — defense in depth: school_id di path (kalau ada)
// harus sama dengan scope aktif.
func RequirePathScopeMatch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(strings.ToLower(c.Path()), "/api/a/") {
			return c.Next()
		}

		pathID := strings.TrimSpace(extractSchoolIDStrict(c))
		if pathID == "" {
			return c.Next()
		}

		active, _ := c.Locals(helper.LocActiveSchoolID).(string)
		if strings.TrimSpace(active) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Scope school belum ditentukan")
		}
		if !strings.EqualFold(pathID, active) {
			return fiber.NewError(fiber.StatusForbidden, "Scope school tidak cocok dengan path")
		}
		return c.Next()
	}
}

/* ==========================
   STRICT ROLE CHECK
========================== */

// IsSchoolAdmin — hanya admin sekolah (owner bypass).
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsSchoolAdmin(c) {
			log.Printf("[ScopeGuard] akses ditolak | path=%s", c.Path())
			return fiber.NewError(fiber.StatusForbidden, "Role tidak berhak mengakses endpoint ini")
		}
		return c.Next()
	}
}

// IsOwnerGlobal — khusus owner lintas tenant.
func IsOwnerGlobal() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsOwner(c) {
			return fiber.NewError(fiber.StatusForbidden, "Akses khusus owner")
		}
		return c.Next()
	}
}
