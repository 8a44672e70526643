// file: internals/features/school/calendar/controller/calendar_event_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/calendar/dto"
	m "schoolku_backend/internals/features/school/calendar/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================
   Controller & Constructor
   ========================= */

type CalendarEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *CalendarEventController {
	return &CalendarEventController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   List — GET /calendar-events?year=&month=&kind=&page=&per_page=
   ========================= */

func (ctl *CalendarEventController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&m.CalendarEventModel{}).
		Where("calendar_event_school_id = ?", schoolID)

	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		year, er := strconv.Atoi(raw)
		if er != nil || year < 2000 || year > 2100 {
			return helper.JsonError(c, http.StatusBadRequest, "Parameter year tidak valid")
		}
		if rawM := strings.TrimSpace(c.Query("month")); rawM != "" {
			month, er2 := strconv.Atoi(rawM)
			if er2 != nil || month < 1 || month > 12 {
				return helper.JsonError(c, http.StatusBadRequest, "Parameter month tidak valid")
			}
			first, last := dbtime.MonthRange(year, time.Month(month))
			q = q.Where("calendar_event_start_date BETWEEN ? AND ?", first, last)
		} else {
			first, last := dbtime.YearRange(year)
			q = q.Where("calendar_event_start_date BETWEEN ? AND ?", first, last)
		}
	}
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		q = q.Where("calendar_event_kind = ?", kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var rows []m.CalendarEventModel
	if err := q.
		Order("calendar_event_start_date ASC, calendar_event_created_at ASC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	pg := helper.BuildPaginationFromOffset(total, p.Offset, p.Limit)
	return helper.JsonList(c, "ok", d.FromModelCalendarEvents(rows), pg)
}

/* =========================
   Detail — GET /calendar-events/:id
   ========================= */

func (ctl *CalendarEventController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Parameter id tidak valid")
	}

	var ev m.CalendarEventModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("calendar_event_id = ? AND calendar_event_school_id = ?", id, schoolID).
		First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", d.FromModelCalendarEvent(&ev))
}

/* =========================
   Create — POST /calendar-events
   ========================= */

func (ctl *CalendarEventController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}

	var req d.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[CalendarEvent.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	ev, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(ev).Error; err != nil {
		log.Printf("[CalendarEvent.Create] err: %v", err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Event berhasil ditambahkan", d.FromModelCalendarEvent(ev))
}

/* =========================
   Update — PUT /calendar-events/:id
   ========================= */

func (ctl *CalendarEventController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Parameter id tidak valid")
	}

	var req d.UpdateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var ev m.CalendarEventModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("calendar_event_id = ? AND calendar_event_school_id = ?", id, schoolID).
		First(&ev).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if err := req.Apply(&ev); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Save(&ev).Error; err != nil {
		log.Printf("[CalendarEvent.Update] id=%s err: %v", id, err)
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Event berhasil diperbarui", d.FromModelCalendarEvent(&ev))
}

/* =========================
   Delete — DELETE /calendar-events/:id (soft delete)
   ========================= */

func (ctl *CalendarEventController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "School scope tidak ditemukan di token")
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Parameter id tidak valid")
	}

	res := ctl.DB.WithContext(c.Context()).
		Where("calendar_event_id = ? AND calendar_event_school_id = ?", id, schoolID).
		Delete(&m.CalendarEventModel{})
	if res.Error != nil {
		log.Printf("[CalendarEvent.Delete] id=%s err: %v", id, res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Event tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{"calendar_event_id": id})
}
