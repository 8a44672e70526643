// file: internals/features/school/calendar/service/event_mirror.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	evModel "schoolku_backend/internals/features/school/calendar/model"
	holModel "schoolku_backend/internals/features/school/holidays/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   EventMirror — jembatan Holiday Store ↔ kalender Events.
   Event "kembaran" TIDAK punya foreign key ke libur; kuncinya
   (school_id, kind=Holiday, start_date). Semua mutator libur
   WAJIB lewat helper ini supaya mirror tidak yatim/dobel.
   Semua method menerima tx: mirror ikut transaksi pemanggil.
   ========================================================= */

// BuildHolidayEvent membangun event mirror dari satu libur (murni, tanpa I/O).
func BuildHolidayEvent(h *holModel.SchoolHolidayModel) *evModel.CalendarEventModel {
	slug := helper.Slugify(h.SchoolHolidayName+"-"+h.SchoolHolidayDate.String(), 160)
	desc := "Holiday: " + h.SchoolHolidayName
	return &evModel.CalendarEventModel{
		CalendarEventSchoolID:        h.SchoolHolidaySchoolID,
		CalendarEventTitle:           h.SchoolHolidayName,
		CalendarEventSlug:            &slug,
		CalendarEventKind:            evModel.EventKindHoliday,
		CalendarEventStartDate:       h.SchoolHolidayDate,
		CalendarEventEndDate:         h.SchoolHolidayDate,
		CalendarEventDescription:     &desc,
		CalendarEventAudience:        evModel.EventAudienceAll,
		CalendarEventHolidaySnapshot: HolidaySnapshot(h),
	}
}

// HolidaySnapshot — jejak libur sumber di event mirror (audit, bukan FK).
func HolidaySnapshot(h *holModel.SchoolHolidayModel) datatypes.JSONMap {
	return datatypes.JSONMap{
		"school_holiday_id":      h.SchoolHolidayID.String(),
		"school_holiday_date":    h.SchoolHolidayDate.String(),
		"school_holiday_name":    h.SchoolHolidayName,
		"school_holiday_is_paid": h.SchoolHolidayIsPaid,
	}
}

// findByDate mencari event mirror via kunci tanggal.
func findByDate(tx *gorm.DB, schoolID uuid.UUID, date dbtime.DateYMD) (*evModel.CalendarEventModel, error) {
	var ev evModel.CalendarEventModel
	err := tx.
		Where("calendar_event_school_id = ?", schoolID).
		Where("calendar_event_kind = ?", evModel.EventKindHoliday).
		Where("calendar_event_start_date = ?", date).
		Order("calendar_event_created_at ASC").
		First(&ev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ev, nil
}

// CreateForHoliday — dipanggil saat admin menambah libur (selalu insert).
func CreateForHoliday(tx *gorm.DB, h *holModel.SchoolHolidayModel) error {
	return tx.Create(BuildHolidayEvent(h)).Error
}

// EnsureForHoliday — existence-check-lalu-insert (BUKAN upsert: tabel event
// tidak punya unique key untuk konflik). Dipakai lazy provisioning.
func EnsureForHoliday(tx *gorm.DB, h *holModel.SchoolHolidayModel) error {
	existing, err := findByDate(tx, h.SchoolHolidaySchoolID, h.SchoolHolidayDate)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	return tx.Create(BuildHolidayEvent(h)).Error
}

// RelocateForHoliday — dipanggil saat libur di-update. Event dicari via
// tanggal LAMA lalu dipindah+rename; kalau mirror sudah hilang (yatim),
// dibuat baru di tanggal baru (find-or-create-or-relocate).
func RelocateForHoliday(tx *gorm.DB, h *holModel.SchoolHolidayModel, oldDate dbtime.DateYMD) error {
	// event yang sudah terlanjur ada di tanggal BARU dibuang dulu,
	// supaya relokasi tidak menghasilkan mirror dobel
	if !oldDate.Equal(h.SchoolHolidayDate) {
		if err := RemoveForHolidayDate(tx, h.SchoolHolidaySchoolID, h.SchoolHolidayDate); err != nil {
			return err
		}
	}

	existing, err := findByDate(tx, h.SchoolHolidaySchoolID, oldDate)
	if err != nil {
		return err
	}
	if existing == nil {
		return CreateForHoliday(tx, h)
	}

	slug := helper.Slugify(h.SchoolHolidayName+"-"+h.SchoolHolidayDate.String(), 160)
	desc := "Holiday: " + h.SchoolHolidayName
	return tx.Model(&evModel.CalendarEventModel{}).
		Where("calendar_event_id = ?", existing.CalendarEventID).
		Updates(map[string]any{
			"calendar_event_title":            h.SchoolHolidayName,
			"calendar_event_slug":             slug,
			"calendar_event_start_date":       h.SchoolHolidayDate,
			"calendar_event_end_date":         h.SchoolHolidayDate,
			"calendar_event_description":      desc,
			"calendar_event_holiday_snapshot": HolidaySnapshot(h),
		}).Error
}

// RemoveForHolidayDate — hapus mirror via kunci tanggal. Unscoped: baris
// soft-delete di tanggal yang sama bikin lookup berikutnya ambigu.
func RemoveForHolidayDate(tx *gorm.DB, schoolID uuid.UUID, date dbtime.DateYMD) error {
	return tx.Unscoped().
		Where("calendar_event_school_id = ?", schoolID).
		Where("calendar_event_kind = ?", evModel.EventKindHoliday).
		Where("calendar_event_start_date = ?", date).
		Delete(&evModel.CalendarEventModel{}).Error
}
