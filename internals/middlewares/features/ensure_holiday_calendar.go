// file: internals/middlewares/features/ensure_holiday_calendar.go
package middleware

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	holidaySvc "schoolku_backend/internals/features/school/holidays/service"
	helper "schoolku_backend/internals/helpers/auth"
)

// EnsureHolidayCalendar — lazy provisioning kalender libur.
// Jalan SETELAH scope tenant resolve: kalau kalender tahun berjalan +
// tahun depan belum terisi, generate di background. Request tidak pernah
// menunggu atau gagal karena provisioning.
func EnsureHolidayCalendar(db *gorm.DB) fiber.Handler {
	prov := holidaySvc.NewCalendarProvisioner(db)

	return func(c *fiber.Ctx) error {
		sid, _ := c.Locals(helper.LocActiveSchoolID).(string)
		schoolID, err := uuid.Parse(sid)
		if err != nil || schoolID == uuid.Nil {
			return c.Next()
		}

		now := time.Now().UTC()
		go func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[EnsureHolidayCalendar] panic recovered: %v", r)
				}
			}()
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			prov.Ensure(ctx, schoolID, now.Year())
			prov.Ensure(ctx, schoolID, now.Year()+1)
		}()

		return c.Next()
	}
}
