package route

import (
	holidayCtrl "schoolku_backend/internals/features/school/holidays/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolHolidayAdminRoutes — CRUD libur + rekonsiliasi absensi (scope: admin sekolah).
func SchoolHolidayAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := holidayCtrl.New(db, v)

	g := r.Group("/holidays")
	g.Get("/", ctl.List)              // ?year=2026
	g.Post("/", ctl.Create)           // tambah libur manual
	g.Put("/:id", ctl.Update)         // ubah tanggal/nama/is_paid
	g.Delete("/:id", ctl.Delete)      // hapus libur (absensi TIDAK di-rollback)
	g.Post("/auto-mark", ctl.AutoMark)
	g.Post("/sync-from-calendar", ctl.SyncFromCalendar)
}
