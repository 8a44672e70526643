// file: internals/features/school/holidays/dto/school_holiday_dto.go
package dto

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	attService "schoolku_backend/internals/features/school/attendance/service"
	m "schoolku_backend/internals/features/school/holidays/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   1) REQUESTS
   ========================================================= */

var (
	ErrInvalidDate  = errors.New("invalid date (use YYYY-MM-DD)")
	ErrInvalidMonth = errors.New("invalid month (use 1-12 or \"all\")")
)

// Create
type CreateSchoolHolidayRequest struct {
	// Tanggal "YYYY-MM-DD"
	SchoolHolidayDate string `json:"school_holiday_date" validate:"required,datetime=2006-01-02"`

	SchoolHolidayName   string `json:"school_holiday_name" validate:"required,max=200"`
	SchoolHolidayIsPaid *bool  `json:"school_holiday_is_paid"` // default true
}

func (r *CreateSchoolHolidayRequest) ToModel(schoolID uuid.UUID) (*m.SchoolHolidayModel, error) {
	d, err := dbtime.ParseDateYMD(r.SchoolHolidayDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	isPaid := true
	if r.SchoolHolidayIsPaid != nil {
		isPaid = *r.SchoolHolidayIsPaid
	}
	return &m.SchoolHolidayModel{
		SchoolHolidaySchoolID: schoolID,
		SchoolHolidayDate:     d,
		SchoolHolidayName:     strings.TrimSpace(r.SchoolHolidayName),
		SchoolHolidayIsPaid:   isPaid,
	}, nil
}

// Update (full replace — id dari path, school_id dari token)
type UpdateSchoolHolidayRequest struct {
	SchoolHolidayDate   string `json:"school_holiday_date" validate:"required,datetime=2006-01-02"`
	SchoolHolidayName   string `json:"school_holiday_name" validate:"required,max=200"`
	SchoolHolidayIsPaid bool   `json:"school_holiday_is_paid"`
}

func (r *UpdateSchoolHolidayRequest) Date() (dbtime.DateYMD, error) {
	d, err := dbtime.ParseDateYMD(r.SchoolHolidayDate)
	if err != nil {
		return dbtime.DateYMD{}, ErrInvalidDate
	}
	return d, nil
}

/* =========================
   Auto-mark (reconcile)
   ========================= */

// MonthSelector menerima 1-12 atau "all" dari JSON.
type MonthSelector struct {
	All   bool
	Month int
}

func (s *MonthSelector) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == `"all"` || raw == `"ALL"` || raw == `"All"` {
		s.All = true
		return nil
	}
	// angka polos atau angka dalam string ("8")
	raw = strings.Trim(raw, `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return ErrInvalidMonth
	}
	s.Month = n
	return nil
}

func (s MonthSelector) MarshalJSON() ([]byte, error) {
	if s.All {
		return []byte(`"all"`), nil
	}
	return json.Marshal(s.Month)
}

// Months mengembalikan daftar bulan yang diminta (ter-normalisasi).
func (s MonthSelector) Months() ([]int, error) {
	if s.All {
		return attService.AllMonths(), nil
	}
	if s.Month < 1 || s.Month > 12 {
		return nil, ErrInvalidMonth
	}
	return []int{s.Month}, nil
}

type AutoMarkRequest struct {
	Month MonthSelector `json:"month"`
	Year  int           `json:"year" validate:"required,min=2000,max=2100"`
}

type AutoMarkResponse struct {
	DaysMarked int `json:"days_marked"`
}

/* =========================
   Sync & broadcast (owner)
   ========================= */

type SyncFromCalendarRequest struct {
	Year int `json:"year" validate:"required,min=2000,max=2100"`
}

type SyncFromCalendarResponse struct {
	HolidaysSynced int `json:"holidays_synced"`
}

type BroadcastSingleRequest struct {
	SchoolHolidayDate   string `json:"school_holiday_date" validate:"required,datetime=2006-01-02"`
	SchoolHolidayName   string `json:"school_holiday_name" validate:"required,max=200"`
	SchoolHolidayIsPaid *bool  `json:"school_holiday_is_paid"`
}

type BroadcastBulkRequest struct {
	Year int `json:"year" validate:"required,min=2000,max=2100"`
}

type SyncFromSchoolRequest struct {
	SourceSchoolID string   `json:"source_school_id" validate:"required,uuid"`
	Year           *int     `json:"year" validate:"omitempty,min=2000,max=2100"`
	SelectedDates  []string `json:"selected_dates" validate:"omitempty,dive,datetime=2006-01-02"`
}

func (r *SyncFromSchoolRequest) ParsedDates() ([]dbtime.DateYMD, error) {
	out := make([]dbtime.DateYMD, 0, len(r.SelectedDates))
	for _, s := range r.SelectedDates {
		d, err := dbtime.ParseDateYMD(s)
		if err != nil {
			return nil, ErrInvalidDate
		}
		out = append(out, d)
	}
	return out, nil
}

/* =========================================================
   2) RESPONSES
   ========================================================= */

type SchoolHolidayResponse struct {
	SchoolHolidayID       uuid.UUID `json:"school_holiday_id"`
	SchoolHolidaySchoolID uuid.UUID `json:"school_holiday_school_id"`

	SchoolHolidayDate string `json:"school_holiday_date"` // YYYY-MM-DD
	SchoolHolidayName string `json:"school_holiday_name"`

	SchoolHolidayIsPaid   bool `json:"school_holiday_is_paid"`
	SchoolHolidayIsSunday bool `json:"school_holiday_is_sunday"`

	SchoolHolidayCreatedAt time.Time `json:"school_holiday_created_at"`
	SchoolHolidayUpdatedAt time.Time `json:"school_holiday_updated_at"`
}

func FromModelSchoolHoliday(h *m.SchoolHolidayModel) *SchoolHolidayResponse {
	if h == nil {
		return nil
	}
	return &SchoolHolidayResponse{
		SchoolHolidayID:        h.SchoolHolidayID,
		SchoolHolidaySchoolID:  h.SchoolHolidaySchoolID,
		SchoolHolidayDate:      h.SchoolHolidayDate.String(),
		SchoolHolidayName:      h.SchoolHolidayName,
		SchoolHolidayIsPaid:    h.SchoolHolidayIsPaid,
		SchoolHolidayIsSunday:  h.SchoolHolidayDate.IsSunday(),
		SchoolHolidayCreatedAt: h.SchoolHolidayCreatedAt,
		SchoolHolidayUpdatedAt: h.SchoolHolidayUpdatedAt,
	}
}

func FromModelSchoolHolidays(list []m.SchoolHolidayModel) []*SchoolHolidayResponse {
	out := make([]*SchoolHolidayResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModelSchoolHoliday(&list[i]))
	}
	return out
}
