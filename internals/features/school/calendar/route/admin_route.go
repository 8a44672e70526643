package route

import (
	eventCtrl "schoolku_backend/internals/features/school/calendar/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CalendarEventAdminRoutes — CRUD kalender tenant (scope: admin sekolah).
func CalendarEventAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := eventCtrl.New(db, v)

	g := r.Group("/calendar-events")
	g.Get("/", ctl.List)         // ?year=&month=&kind=&page=&per_page=
	g.Get("/:id", ctl.GetByID)   // detail
	g.Post("/", ctl.Create)      // create
	g.Put("/:id", ctl.Update)    // partial update
	g.Delete("/:id", ctl.Delete) // soft delete
}
