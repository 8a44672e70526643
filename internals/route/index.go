// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	schoolkuMiddleware "schoolku_backend/internals/middlewares/auth_school"
	featuresMiddleware "schoolku_backend/internals/middlewares/features"

	routeDetails "schoolku_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + Scope + RoleCheck)...")
	admin := app.Group("/api/a",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.UseSchoolScope(),
		featuresMiddleware.RequirePathScopeMatch(),
		featuresMiddleware.IsSchoolAdmin(),
		featuresMiddleware.EnsureHolidayCalendar(db),
	)

	// ===================== OWNER (GLOBAL) =====================
	log.Println("[INFO] Setting up OWNER group (Auth + owner global)...")
	owner := app.Group("/api/o",
		schoolkuMiddleware.AuthJWT(schoolkuMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		featuresMiddleware.IsOwnerGlobal(),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolAdminRoutes(admin, db)
	routeDetails.SchoolOwnerRoutes(owner, db)
}
