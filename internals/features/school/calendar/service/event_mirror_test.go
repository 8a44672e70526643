package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	evModel "schoolku_backend/internals/features/school/calendar/model"
	holModel "schoolku_backend/internals/features/school/holidays/model"
	"schoolku_backend/internals/helpers/dbtime"
)

func sampleHoliday() *holModel.SchoolHolidayModel {
	return &holModel.SchoolHolidayModel{
		SchoolHolidayID:       uuid.New(),
		SchoolHolidaySchoolID: uuid.New(),
		SchoolHolidayDate:     dbtime.NewDateYMD(2026, time.October, 2),
		SchoolHolidayName:     "Gandhi Jayanti",
		SchoolHolidayIsPaid:   true,
	}
}

func TestBuildHolidayEvent(t *testing.T) {
	h := sampleHoliday()
	ev := BuildHolidayEvent(h)
	require.NotNil(t, ev)

	assert.Equal(t, h.SchoolHolidaySchoolID, ev.CalendarEventSchoolID)
	assert.Equal(t, evModel.EventKindHoliday, ev.CalendarEventKind)
	assert.Equal(t, "Gandhi Jayanti", ev.CalendarEventTitle)
	assert.Equal(t, h.SchoolHolidayDate.String(), ev.CalendarEventStartDate.String())
	assert.Equal(t, h.SchoolHolidayDate.String(), ev.CalendarEventEndDate.String())
	assert.Equal(t, evModel.EventAudienceAll, ev.CalendarEventAudience)

	require.NotNil(t, ev.CalendarEventSlug)
	assert.Equal(t, "gandhi-jayanti-2026-10-02", *ev.CalendarEventSlug)

	require.NotNil(t, ev.CalendarEventDescription)
	assert.Equal(t, "Holiday: Gandhi Jayanti", *ev.CalendarEventDescription)
}

func TestHolidaySnapshot(t *testing.T) {
	h := sampleHoliday()
	snap := HolidaySnapshot(h)

	assert.Equal(t, h.SchoolHolidayID.String(), snap["school_holiday_id"])
	assert.Equal(t, "2026-10-02", snap["school_holiday_date"])
	assert.Equal(t, "Gandhi Jayanti", snap["school_holiday_name"])
	assert.Equal(t, true, snap["school_holiday_is_paid"])
}

/* =========================
   RelocateForHoliday (sqlite in-memory)
   ========================= */

// newMirrorDB — sqlite in-memory + DDL manual (default gen_random_uuid()
// milik Postgres tidak bisa dimigrasi otomatis ke sqlite).
func newMirrorDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`
		CREATE TABLE calendar_events (
			calendar_event_id               TEXT PRIMARY KEY DEFAULT (
				lower(hex(randomblob(4))) || '-' || lower(hex(randomblob(2))) || '-' ||
				lower(hex(randomblob(2))) || '-' || lower(hex(randomblob(2))) || '-' ||
				lower(hex(randomblob(6)))),
			calendar_event_school_id        TEXT NOT NULL,
			calendar_event_title            TEXT NOT NULL,
			calendar_event_slug             TEXT,
			calendar_event_kind             TEXT NOT NULL,
			calendar_event_start_date       TEXT NOT NULL,
			calendar_event_end_date         TEXT NOT NULL,
			calendar_event_description      TEXT,
			calendar_event_audience         TEXT NOT NULL DEFAULT 'all',
			calendar_event_holiday_snapshot TEXT,
			calendar_event_created_at       DATETIME,
			calendar_event_updated_at       DATETIME,
			calendar_event_deleted_at       DATETIME
		)`).Error)
	return db
}

func countHolidayEvents(t *testing.T, db *gorm.DB, schoolID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Unscoped().Model(&evModel.CalendarEventModel{}).
		Where("calendar_event_school_id = ?", schoolID).
		Where("calendar_event_kind = ?", evModel.EventKindHoliday).
		Count(&n).Error)
	return n
}

// Ubah tanggal libur: mirror DIPINDAH (plus rename), bukan diduplikasi.
func TestRelocateForHolidayMovesExistingEvent(t *testing.T) {
	db := newMirrorDB(t)
	h := sampleHoliday()
	require.NoError(t, CreateForHoliday(db, h))

	oldDate := h.SchoolHolidayDate
	h.SchoolHolidayDate = dbtime.NewDateYMD(2026, time.October, 5)
	h.SchoolHolidayName = "Gandhi Jayanti (observed)"
	require.NoError(t, RelocateForHoliday(db, h, oldDate))

	stale, err := findByDate(db, h.SchoolHolidaySchoolID, oldDate)
	require.NoError(t, err)
	assert.Nil(t, stale, "tanggal lama tidak boleh menyisakan mirror")

	moved, err := findByDate(db, h.SchoolHolidaySchoolID, h.SchoolHolidayDate)
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, "Gandhi Jayanti (observed)", moved.CalendarEventTitle)
	assert.Equal(t, "2026-10-05", moved.CalendarEventStartDate.String())
	assert.Equal(t, "2026-10-05", moved.CalendarEventEndDate.String())

	assert.Equal(t, int64(1), countHolidayEvents(t, db, h.SchoolHolidaySchoolID))
}

// Mirror sudah yatim (hilang di tanggal lama): relokasi membuat ulang
// event di tanggal baru, tetap satu mirror.
func TestRelocateForHolidayRecreatesWhenMirrorMissing(t *testing.T) {
	db := newMirrorDB(t)
	h := sampleHoliday()

	oldDate := dbtime.NewDateYMD(2026, time.September, 30)
	require.NoError(t, RelocateForHoliday(db, h, oldDate))

	created, err := findByDate(db, h.SchoolHolidaySchoolID, h.SchoolHolidayDate)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Gandhi Jayanti", created.CalendarEventTitle)

	assert.Equal(t, int64(1), countHolidayEvents(t, db, h.SchoolHolidaySchoolID))
}

// Tanggal tujuan sudah keburu punya event holiday: yang lama di tujuan
// dibuang dulu supaya relokasi tidak berakhir dengan mirror dobel.
func TestRelocateForHolidayRemovesStaleEventAtNewDate(t *testing.T) {
	db := newMirrorDB(t)
	h := sampleHoliday()
	require.NoError(t, CreateForHoliday(db, h))

	newDate := dbtime.NewDateYMD(2026, time.October, 5)
	stale := &evModel.CalendarEventModel{
		CalendarEventID:        uuid.New(),
		CalendarEventSchoolID:  h.SchoolHolidaySchoolID,
		CalendarEventTitle:     "Libur lama",
		CalendarEventKind:      evModel.EventKindHoliday,
		CalendarEventStartDate: newDate,
		CalendarEventEndDate:   newDate,
		CalendarEventAudience:  evModel.EventAudienceAll,
	}
	require.NoError(t, db.Create(stale).Error)

	oldDate := h.SchoolHolidayDate
	h.SchoolHolidayDate = newDate
	require.NoError(t, RelocateForHoliday(db, h, oldDate))

	got, err := findByDate(db, h.SchoolHolidaySchoolID, newDate)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Gandhi Jayanti", got.CalendarEventTitle, "yang menang harus hasil relokasi, bukan event basi")

	assert.Equal(t, int64(1), countHolidayEvents(t, db, h.SchoolHolidaySchoolID))
}
