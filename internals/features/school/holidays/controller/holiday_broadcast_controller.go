// file: internals/features/school/holidays/controller/holiday_broadcast_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/holidays/dto"
	svc "schoolku_backend/internals/features/school/holidays/service"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
   ========================= */

type HolidayBroadcastController struct {
	DB          *gorm.DB
	Validate    *validator.Validate
	Broadcaster *svc.HolidayBroadcaster
}

func NewBroadcast(db *gorm.DB, v *validator.Validate) *HolidayBroadcastController {
	return &HolidayBroadcastController{
		DB:          db,
		Validate:    v,
		Broadcaster: svc.NewHolidayBroadcaster(db),
	}
}

/* =========================
   BroadcastSingle — POST /holidays/broadcast
   ========================= */

func (ctl *HolidayBroadcastController) BroadcastSingle(c *fiber.Ctx) error {
	var req d.BroadcastSingleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	date, err := dbtime.ParseDateYMD(req.SchoolHolidayDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	isPaid := true
	if req.SchoolHolidayIsPaid != nil {
		isPaid = *req.SchoolHolidayIsPaid
	}

	affected, err := ctl.Broadcaster.BroadcastSingle(c.Context(), date, strings.TrimSpace(req.SchoolHolidayName), isPaid)
	if err != nil {
		log.Printf("[HolidayBroadcast.Single] date=%s err: %v", date, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Libur berhasil dibroadcast ke semua sekolah aktif", fiber.Map{
		"school_holiday_date": date.String(),
		"schools_affected":    affected,
	})
}

/* =========================
   BroadcastBulk — POST /holidays/broadcast-bulk
   ========================= */

func (ctl *HolidayBroadcastController) BroadcastBulk(c *fiber.Ctx) error {
	var req d.BroadcastBulkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	res, err := ctl.Broadcaster.BroadcastAnnual(c.Context(), req.Year)
	if err != nil {
		// best-effort: sebagian tanggal bisa sudah terpropagasi
		var perr *svc.PartialPropagationError
		if errors.As(err, &perr) && res != nil {
			log.Printf("[HolidayBroadcast.Bulk] partial year=%d done=%d/%d err: %v",
				req.Year, perr.Done, perr.Total, perr.Err)
			return writePartialPropagation(c, res, perr)
		}
		log.Printf("[HolidayBroadcast.Bulk] year=%d err: %v", req.Year, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Kalender tahunan berhasil dibroadcast", res)
}

/* =========================
   SyncFromSchool — POST /holidays/sync-from-school
   ========================= */

func (ctl *HolidayBroadcastController) SyncFromSchool(c *fiber.Ctx) error {
	var req d.SyncFromSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	sourceID, err := uuid.Parse(req.SourceSchoolID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "source_school_id tidak valid")
	}
	dates, err := req.ParsedDates()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	res, err := ctl.Broadcaster.SyncFromSchool(c.Context(), sourceID, req.Year, dates)
	if err != nil {
		var perr *svc.PartialPropagationError
		if errors.As(err, &perr) && res != nil {
			log.Printf("[HolidayBroadcast.SyncFromSchool] partial source=%s done=%d/%d err: %v",
				sourceID, perr.Done, perr.Total, perr.Err)
			return writePartialPropagation(c, res, perr)
		}
		log.Printf("[HolidayBroadcast.SyncFromSchool] source=%s err: %v", sourceID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Libur sumber berhasil disinkronkan ke sekolah lain", res)
}

/* =========================
   Partial failure writer
   ========================= */

// writePartialPropagation — broadcast best-effort gagal di tengah: status
// tetap 500, tapi BroadcastResult (tanggal per tanggal + done/total) ikut
// di body supaya caller tahu persis apa yang sudah commit.
func writePartialPropagation(c *fiber.Ctx, res *svc.BroadcastResult, perr *svc.PartialPropagationError) error {
	return helper.JsonErrorWithData(c, http.StatusInternalServerError, perr.Error(), fiber.Map{
		"result":          res,
		"dates_committed": perr.Done,
		"dates_total":     perr.Total,
		"failed_at_date":  perr.AtDate,
	})
}
