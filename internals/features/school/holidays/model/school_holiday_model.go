// file: internals/features/school/holidays/model/school_holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/dbtime"
)

// SchoolHolidayModel — satu baris per (school_id, tanggal).
// Unique index ux_school_holidays_school_date adalah invariant pusat engine:
// tryCreate (admin add) menolak konflik, upsert (reconciler/broadcast) menimpa.
// Delete = hard delete; libur yang dihapus benar-benar hilang (beda dengan
// baris absensi yang dikelola reconciler).
type SchoolHolidayModel struct {
	SchoolHolidayID uuid.UUID `gorm:"column:school_holiday_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_holiday_id"`

	// tenant scope
	SchoolHolidaySchoolID uuid.UUID `gorm:"column:school_holiday_school_id;type:uuid;not null;uniqueIndex:ux_school_holidays_school_date" json:"school_holiday_school_id"`

	// tanggal kalender murni — YYYY-MM-DD, tanpa zona
	SchoolHolidayDate dbtime.DateYMD `gorm:"column:school_holiday_date;type:date;not null;uniqueIndex:ux_school_holidays_school_date" json:"school_holiday_date"`

	SchoolHolidayName   string `gorm:"column:school_holiday_name;type:varchar(200);not null" json:"school_holiday_name"`
	SchoolHolidayIsPaid bool   `gorm:"column:school_holiday_is_paid;not null;default:true" json:"school_holiday_is_paid"`

	// audit
	SchoolHolidayCreatedAt time.Time `gorm:"column:school_holiday_created_at;type:timestamptz;not null;autoCreateTime" json:"school_holiday_created_at"`
	SchoolHolidayUpdatedAt time.Time `gorm:"column:school_holiday_updated_at;type:timestamptz;not null;autoUpdateTime" json:"school_holiday_updated_at"`
}

func (SchoolHolidayModel) TableName() string { return "school_holidays" }
