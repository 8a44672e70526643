// file: internals/features/school/holidays/controller/holiday_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attService "schoolku_backend/internals/features/school/attendance/service"
	d "schoolku_backend/internals/features/school/holidays/dto"
	svc "schoolku_backend/internals/features/school/holidays/service"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

/* =========================
   Controller & Constructor
   ========================= */

type SchoolHolidayController struct {
	DB         *gorm.DB
	Validate   *validator.Validate
	Store      *svc.HolidayStore
	Reconciler *attService.HolidayReconciler
	Sync       *svc.CalendarSync
}

func New(db *gorm.DB, v *validator.Validate) *SchoolHolidayController {
	return &SchoolHolidayController{
		DB:         db,
		Validate:   v,
		Store:      svc.NewHolidayStore(db),
		Reconciler: attService.NewHolidayReconciler(db),
		Sync:       svc.NewCalendarSync(db),
	}
}

/* =========================
   Helpers
   ========================= */

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// writeServiceError memetakan error taksonomi engine ke status HTTP.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrDuplicateHoliday):
		return helper.JsonError(c, http.StatusConflict, "Libur untuk tanggal tersebut sudah ada")
	case errors.Is(err, svc.ErrHolidayNotFound):
		return helper.JsonError(c, http.StatusNotFound, "Libur tidak ditemukan")
	case errors.Is(err, svc.ErrTenantMissing):
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}
	var rerr *attService.ReconciliationError
	if errors.As(err, &rerr) {
		return helper.JsonError(c, http.StatusInternalServerError, rerr.Error())
	}
	if helper.IsUniqueViolation(err) {
		return helper.JsonError(c, http.StatusConflict, "Data duplikat (unique violation)")
	}
	return helper.JsonError(c, http.StatusInternalServerError, err.Error())
}

/* =========================
   List — GET /holidays?year=2026
   ========================= */

func (ctl *SchoolHolidayController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}

	var year *int
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		y, er := strconv.Atoi(raw)
		if er != nil || y < 2000 || y > 2100 {
			return helper.JsonError(c, http.StatusBadRequest, "Parameter year tidak valid")
		}
		year = &y
	}

	list, err := ctl.Store.List(c.Context(), schoolID, year)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", d.FromModelSchoolHolidays(list))
}

/* =========================
   Create — POST /holidays
   ========================= */

func (ctl *SchoolHolidayController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}

	var req d.CreateSchoolHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[SchoolHoliday.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	h, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// create + mirror event + stempel absensi 1 tanggal (kecuali Minggu),
	// satu transaksi di dalam store
	if err := ctl.Store.Create(c.Context(), h); err != nil {
		log.Printf("[SchoolHoliday.Create] err: %v", err)
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Libur berhasil ditambahkan", d.FromModelSchoolHoliday(h))
}

/* =========================
   Update — PUT /holidays/:id
   ========================= */

func (ctl *SchoolHolidayController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Parameter id tidak valid")
	}

	var req d.UpdateSchoolHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	date, err := req.Date()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := ctl.Store.Update(c.Context(), id, schoolID, date,
		strings.TrimSpace(req.SchoolHolidayName), req.SchoolHolidayIsPaid)
	if err != nil {
		log.Printf("[SchoolHoliday.Update] id=%s err: %v", id, err)
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Libur berhasil diperbarui", d.FromModelSchoolHoliday(updated))
}

/* =========================
   Delete — DELETE /holidays/:id
   ========================= */

func (ctl *SchoolHolidayController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Parameter id tidak valid")
	}

	if err := ctl.Store.Delete(c.Context(), id, schoolID); err != nil {
		log.Printf("[SchoolHoliday.Delete] id=%s err: %v", id, err)
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "Libur berhasil dihapus", fiber.Map{"school_holiday_id": id})
}

/* =========================
   AutoMark — POST /holidays/auto-mark
   ========================= */

func (ctl *SchoolHolidayController) AutoMark(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}

	var req d.AutoMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	months, err := req.Month.Months()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	days, err := ctl.Reconciler.Reconcile(c.Context(), schoolID, months, req.Year)
	if err != nil {
		log.Printf("[SchoolHoliday.AutoMark] school=%s err: %v", schoolID, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Absensi libur berhasil direkonsiliasi", d.AutoMarkResponse{DaysMarked: days})
}

/* =========================
   SyncFromCalendar — POST /holidays/sync-from-calendar
   ========================= */

func (ctl *SchoolHolidayController) SyncFromCalendar(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}

	var req d.SyncFromCalendarRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	n, err := ctl.Sync.SyncFromEvents(c.Context(), schoolID, req.Year)
	if err != nil {
		log.Printf("[SchoolHoliday.SyncFromCalendar] school=%s year=%d err: %v", schoolID, req.Year, err)
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Kalender berhasil disinkronkan", d.SyncFromCalendarResponse{HolidaysSynced: n})
}
