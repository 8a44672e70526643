package route

import (
	holidayCtrl "schoolku_backend/internals/features/school/holidays/controller"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SchoolHolidayOwnerRoutes — broadcast lintas tenant (scope: owner platform).
func SchoolHolidayOwnerRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	ctl := holidayCtrl.NewBroadcast(db, v)

	g := r.Group("/holidays")
	g.Post("/broadcast", ctl.BroadcastSingle)        // satu tanggal ke semua sekolah aktif
	g.Post("/broadcast-bulk", ctl.BroadcastBulk)     // kalender generated satu tahun
	g.Post("/sync-from-school", ctl.SyncFromSchool)  // salin libur sekolah sumber ke yang lain
}
