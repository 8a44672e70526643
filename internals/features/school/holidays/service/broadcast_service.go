// file: internals/features/school/holidays/service/broadcast_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	schoolModel "schoolku_backend/internals/features/lembaga/schools/model"
	m "schoolku_backend/internals/features/school/holidays/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   HolidayBroadcaster — propagasi lintas tenant (khusus owner).
   Satu tanggal = satu pasang statement set-based ke SEMUA tenant
   aktif sekaligus (bukan loop per tenant). Broadcast multi-tanggal
   SENGAJA bukan satu transaksi lintas tenant: tiap tanggal commit
   sendiri, gagal di tengah = tanggal awal tetap commit (best-effort).
   Hasil per tanggal dilaporkan eksplisit lewat BroadcastResult.
   ========================================================= */

type HolidayBroadcaster struct {
	DB *gorm.DB
}

func NewHolidayBroadcaster(db *gorm.DB) *HolidayBroadcaster {
	return &HolidayBroadcaster{DB: db}
}

// BroadcastDateOutcome — nasib satu tanggal dalam broadcast.
type BroadcastDateOutcome struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	Schools int64  `json:"schools_affected"`
	Error   string `json:"error,omitempty"`
}

// BroadcastResult — hasil keseluruhan; Partial=true berarti sebagian
// tanggal sudah commit sebelum gagal.
type BroadcastResult struct {
	Dates           []BroadcastDateOutcome `json:"dates"`
	SchoolsAffected int64                  `json:"schools_affected"`
	HolidaysCount   int                    `json:"holidays_count"`
	Partial         bool                   `json:"partial"`
}

/* =========================
   Variant 1: satu libur → semua tenant
   ========================= */

// BroadcastSingle menulis satu (tanggal, nama) ke Holiday Store + mirror
// event SETIAP tenant aktif, dalam satu transaksi (satu tanggal = atomik).
func (b *HolidayBroadcaster) BroadcastSingle(ctx context.Context, date dbtime.DateYMD, name string, isPaid bool) (int64, error) {
	affected, err := b.activeSchoolCount(ctx, nil)
	if err != nil {
		return 0, err
	}
	err = b.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return b.propagateDate(tx, date, name, isPaid, nil)
	})
	if err != nil {
		return 0, err
	}
	log.Printf("[HolidayBroadcaster] single date=%s schools=%d", date, affected)
	return affected, nil
}

/* =========================
   Variant 2: kalender satu tahun → semua tenant
   ========================= */

// BroadcastAnnual menjalankan generator untuk tahun target lalu
// mem-broadcast tiap tanggal hasilnya. Loop ≤ ~60 entri; tiap tanggal
// commit terpisah — lihat catatan best-effort di atas.
func (b *HolidayBroadcaster) BroadcastAnnual(ctx context.Context, year int) (*BroadcastResult, error) {
	affected, err := b.activeSchoolCount(ctx, nil)
	if err != nil {
		return nil, err
	}

	generated := GenerateYearlyHolidays(year)
	res := &BroadcastResult{
		Dates:           make([]BroadcastDateOutcome, 0, len(generated)),
		SchoolsAffected: affected,
	}
	for i, gh := range generated {
		out := BroadcastDateOutcome{Date: gh.Date.String(), Name: gh.Name, Schools: affected}
		perr := b.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return b.propagateDate(tx, gh.Date, gh.Name, true, nil)
		})
		if perr != nil {
			out.Error = perr.Error()
			out.Schools = 0
			res.Dates = append(res.Dates, out)
			res.Partial = i > 0
			return res, &PartialPropagationError{
				Done:   i,
				Total:  len(generated),
				AtDate: gh.Date.String(),
				Err:    perr,
			}
		}
		res.Dates = append(res.Dates, out)
		res.HolidaysCount++
	}
	log.Printf("[HolidayBroadcaster] annual year=%d dates=%d schools=%d", year, res.HolidaysCount, affected)
	return res, nil
}

/* =========================
   Variant 3: tenant sumber → semua tenant lain
   ========================= */

// SyncFromSchool menyalin libur milik tenant sumber ke semua tenant aktif
// lainnya. Filter opsional: tahun dan/atau allow-list tanggal eksplisit.
func (b *HolidayBroadcaster) SyncFromSchool(ctx context.Context, sourceSchoolID uuid.UUID, year *int, selectedDates []dbtime.DateYMD) (*BroadcastResult, error) {
	if sourceSchoolID == uuid.Nil {
		return nil, ErrTenantMissing
	}

	q := b.DB.WithContext(ctx).
		Where("school_holiday_school_id = ?", sourceSchoolID)
	if year != nil {
		first, last := dbtime.YearRange(*year)
		q = q.Where("school_holiday_date BETWEEN ? AND ?", first, last)
	}
	if len(selectedDates) > 0 {
		strs := make([]string, 0, len(selectedDates))
		for _, d := range selectedDates {
			strs = append(strs, d.String())
		}
		q = q.Where("school_holiday_date = ANY(?)", pq.Array(strs))
	}

	var source []m.SchoolHolidayModel
	if err := q.Order("school_holiday_date ASC").Find(&source).Error; err != nil {
		return nil, err
	}

	affected, err := b.activeSchoolCount(ctx, &sourceSchoolID)
	if err != nil {
		return nil, err
	}

	res := &BroadcastResult{
		Dates:           make([]BroadcastDateOutcome, 0, len(source)),
		SchoolsAffected: affected,
	}
	for i, h := range source {
		out := BroadcastDateOutcome{Date: h.SchoolHolidayDate.String(), Name: h.SchoolHolidayName, Schools: affected}
		perr := b.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return b.propagateDate(tx, h.SchoolHolidayDate, h.SchoolHolidayName, h.SchoolHolidayIsPaid, &sourceSchoolID)
		})
		if perr != nil {
			out.Error = perr.Error()
			out.Schools = 0
			res.Dates = append(res.Dates, out)
			res.Partial = i > 0
			return res, &PartialPropagationError{
				Done:   i,
				Total:  len(source),
				AtDate: h.SchoolHolidayDate.String(),
				Err:    perr,
			}
		}
		res.Dates = append(res.Dates, out)
		res.HolidaysCount++
	}
	log.Printf("[HolidayBroadcaster] from-school src=%s holidays=%d schools=%d", sourceSchoolID, res.HolidaysCount, affected)
	return res, nil
}

/* =========================
   Statement pair per tanggal (set-based)
   ========================= */

// propagateDate — SATU pasang statement untuk SATU tanggal:
// upsert libur ke seluruh tenant target, lalu refresh mirror event
// dengan delete-then-insert (tabel event tidak punya unique key, jadi
// tidak bisa di-upsert).
func (b *HolidayBroadcaster) propagateDate(tx *gorm.DB, date dbtime.DateYMD, name string, isPaid bool, exceptSchoolID *uuid.UUID) error {
	targets := `SELECT school_id FROM schools
		WHERE school_is_active AND school_deleted_at IS NULL`
	args := []any{}
	if exceptSchoolID != nil {
		targets += ` AND school_id <> ?`
	}

	// 1) libur: insert-or-overwrite
	holidaySQL := `
		INSERT INTO school_holidays (
			school_holiday_school_id, school_holiday_date, school_holiday_name,
			school_holiday_is_paid, school_holiday_created_at, school_holiday_updated_at
		)
		SELECT school_id, ?::date, ?, ?, NOW(), NOW() FROM schools
		WHERE school_is_active AND school_deleted_at IS NULL`
	args = append(args, date.String(), name, isPaid)
	if exceptSchoolID != nil {
		holidaySQL += ` AND school_id <> ?`
		args = append(args, *exceptSchoolID)
	}
	holidaySQL += `
		ON CONFLICT (school_holiday_school_id, school_holiday_date)
		DO UPDATE SET
			school_holiday_name       = EXCLUDED.school_holiday_name,
			school_holiday_is_paid    = EXCLUDED.school_holiday_is_paid,
			school_holiday_updated_at = NOW()`
	if err := tx.Exec(holidaySQL, args...).Error; err != nil {
		return err
	}

	// 2) mirror event: delete-then-insert untuk tanggal itu di seluruh target
	delArgs := []any{date.String()}
	delSQL := `
		DELETE FROM calendar_events
		WHERE calendar_event_kind = 'Holiday'
		  AND calendar_event_start_date = ?::date
		  AND calendar_event_school_id IN (` + targets + `)`
	if exceptSchoolID != nil {
		delArgs = append(delArgs, *exceptSchoolID)
	}
	if err := tx.Exec(delSQL, delArgs...).Error; err != nil {
		return err
	}

	insArgs := []any{name, date.String(), date.String(), "Holiday: " + name}
	insSQL := `
		INSERT INTO calendar_events (
			calendar_event_school_id, calendar_event_title, calendar_event_kind,
			calendar_event_start_date, calendar_event_end_date,
			calendar_event_description, calendar_event_audience,
			calendar_event_created_at, calendar_event_updated_at
		)
		SELECT school_id, ?, 'Holiday', ?::date, ?::date, ?, 'all', NOW(), NOW()
		FROM schools
		WHERE school_is_active AND school_deleted_at IS NULL`
	if exceptSchoolID != nil {
		insSQL += ` AND school_id <> ?`
		insArgs = append(insArgs, *exceptSchoolID)
	}
	return tx.Exec(insSQL, insArgs...).Error
}

func (b *HolidayBroadcaster) activeSchoolCount(ctx context.Context, exceptSchoolID *uuid.UUID) (int64, error) {
	q := b.DB.WithContext(ctx).Model(&schoolModel.SchoolModel{}).
		Where("school_is_active = ?", true)
	if exceptSchoolID != nil {
		q = q.Where("school_id <> ?", *exceptSchoolID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
