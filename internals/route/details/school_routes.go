// internals/route/details/school_routes.go
package details

import (
	CalendarEventRoutes "schoolku_backend/internals/features/school/calendar/route"
	HolidayRoutes "schoolku_backend/internals/features/school/holidays/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

/* ===================== ADMIN (per school) ===================== */
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	HolidayRoutes.SchoolHolidayAdminRoutes(r, db)
	CalendarEventRoutes.CalendarEventAdminRoutes(r, db)
}

/* ===================== OWNER (GLOBAL) ===================== */
func SchoolOwnerRoutes(r fiber.Router, db *gorm.DB) {
	HolidayRoutes.SchoolHolidayOwnerRoutes(r, db)
}
