// file: internals/features/school/holidays/service/sync_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	evModel "schoolku_backend/internals/features/school/calendar/model"
	m "schoolku_backend/internals/features/school/holidays/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* =========================================================
   CalendarSync — jembatan Events → Holiday Store.
   syncFromEvents = REPLACE, bukan merge: libur tahun itu yang
   tidak ada di Events akan HILANG. Itu kontraknya.
   ========================================================= */

type CalendarSync struct {
	DB *gorm.DB
}

func NewCalendarSync(db *gorm.DB) *CalendarSync {
	return &CalendarSync{DB: db}
}

// SyncFromEvents membaca semua event kind=Holiday tenant pada tahun tsb,
// dedup per tanggal (judul yang terakhir terbaca menang — simplifikasi,
// bukan merge), hapus seluruh libur tahun itu, lalu bulk-insert hasil
// dedup. Mengembalikan jumlah libur yang tersimpan.
func (s *CalendarSync) SyncFromEvents(ctx context.Context, schoolID uuid.UUID, year int) (int, error) {
	first, last := dbtime.YearRange(year)

	synced := 0
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var events []evModel.CalendarEventModel
		if err := tx.
			Where("calendar_event_school_id = ?", schoolID).
			Where("calendar_event_kind = ?", evModel.EventKindHoliday).
			Where("calendar_event_start_date BETWEEN ? AND ?", first, last).
			Order("calendar_event_start_date ASC, calendar_event_created_at ASC").
			Find(&events).Error; err != nil {
			return err
		}

		rows := DedupHolidayEvents(schoolID, events)

		// replace: buang dulu seluruh libur tahun itu
		if err := tx.
			Where("school_holiday_school_id = ?", schoolID).
			Where("school_holiday_date BETWEEN ? AND ?", first, last).
			Delete(&m.SchoolHolidayModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		// unique (school_id, date) melarang tanggal sama dua kali dalam satu
		// statement — makanya WAJIB dedup dulu; upsert tinggal jaga-jaga
		// kalau ada penulis lain di sela replace
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "school_holiday_school_id"}, {Name: "school_holiday_date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"school_holiday_name":       gorm.Expr("EXCLUDED.school_holiday_name"),
				"school_holiday_updated_at": gorm.Expr("NOW()"),
			}),
		}).Create(&rows).Error; err != nil {
			return err
		}
		synced = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return synced, nil
}

// DedupHolidayEvents meratakan event Holiday jadi kandidat baris libur,
// satu per tanggal; kalau satu tanggal punya dua event, yang terakhir
// terbaca (urutan input) yang menang.
func DedupHolidayEvents(schoolID uuid.UUID, events []evModel.CalendarEventModel) []m.SchoolHolidayModel {
	byDate := make(map[string]m.SchoolHolidayModel, len(events))
	order := make([]string, 0, len(events))
	for _, ev := range events {
		key := ev.CalendarEventStartDate.String()
		if _, seen := byDate[key]; !seen {
			order = append(order, key)
		}
		byDate[key] = m.SchoolHolidayModel{
			SchoolHolidaySchoolID: schoolID,
			SchoolHolidayDate:     ev.CalendarEventStartDate,
			SchoolHolidayName:     ev.CalendarEventTitle,
			SchoolHolidayIsPaid:   true,
		}
	}
	out := make([]m.SchoolHolidayModel, 0, len(byDate))
	for _, key := range order {
		out = append(out, byDate[key])
	}
	return out
}
