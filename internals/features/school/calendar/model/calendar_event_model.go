// file: internals/features/school/calendar/model/calendar_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/helpers/dbtime"
)

// Jenis entry kalender yang dikenal.
const (
	EventKindHoliday  = "Holiday"
	EventKindExam     = "Exam"
	EventKindMeeting  = "Meeting"
	EventKindActivity = "Activity"
)

// Audience entry kalender.
const (
	EventAudienceAll      = "all"
	EventAudienceStudents = "students"
	EventAudienceTeachers = "teachers"
	EventAudienceStaff    = "staff"
)

// CalendarEventModel — kalender tenant yang bisa diedit manusia.
// Mirror dari SchoolHoliday SENGAJA tanpa foreign key: entry "kembaran"
// dicari via (school_id, kind=Holiday, start_date). Ubah tanggal libur di
// luar jalur update Holiday Store = event lama jadi yatim. Itu kelemahan
// desain yang terdokumentasi; EventMirror service yang merapikan.
type CalendarEventModel struct {
	CalendarEventID uuid.UUID `gorm:"column:calendar_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"calendar_event_id"`

	// tenant scope
	CalendarEventSchoolID uuid.UUID `gorm:"column:calendar_event_school_id;type:uuid;not null;index:idx_calendar_events_school_kind_start" json:"calendar_event_school_id"`

	CalendarEventTitle string  `gorm:"column:calendar_event_title;type:varchar(200);not null" json:"calendar_event_title"`
	CalendarEventSlug  *string `gorm:"column:calendar_event_slug;type:varchar(160)" json:"calendar_event_slug,omitempty"`

	// kind + tanggal = kunci lookup mirror (bukan unique — tidak bisa di-upsert)
	CalendarEventKind      string         `gorm:"column:calendar_event_kind;type:varchar(30);not null;index:idx_calendar_events_school_kind_start" json:"calendar_event_kind"`
	CalendarEventStartDate dbtime.DateYMD `gorm:"column:calendar_event_start_date;type:date;not null;index:idx_calendar_events_school_kind_start" json:"calendar_event_start_date"`
	CalendarEventEndDate   dbtime.DateYMD `gorm:"column:calendar_event_end_date;type:date;not null" json:"calendar_event_end_date"`

	CalendarEventDescription *string `gorm:"column:calendar_event_description;type:text" json:"calendar_event_description,omitempty"`
	CalendarEventAudience    string  `gorm:"column:calendar_event_audience;type:varchar(20);not null;default:'all'" json:"calendar_event_audience"`

	// snapshot libur sumber (id/nama/is_paid) saat event dibuat oleh mirror
	CalendarEventHolidaySnapshot datatypes.JSONMap `gorm:"column:calendar_event_holiday_snapshot;type:jsonb" json:"calendar_event_holiday_snapshot,omitempty"`

	// audit
	CalendarEventCreatedAt time.Time      `gorm:"column:calendar_event_created_at;type:timestamptz;not null;autoCreateTime" json:"calendar_event_created_at"`
	CalendarEventUpdatedAt time.Time      `gorm:"column:calendar_event_updated_at;type:timestamptz;not null;autoUpdateTime" json:"calendar_event_updated_at"`
	CalendarEventDeletedAt gorm.DeletedAt `gorm:"column:calendar_event_deleted_at;index" json:"calendar_event_deleted_at,omitempty"`
}

func (CalendarEventModel) TableName() string { return "calendar_events" }
