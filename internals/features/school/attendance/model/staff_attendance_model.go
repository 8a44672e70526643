// file: internals/features/school/attendance/model/staff_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/dbtime"
)

// StaffAttendanceModel — ledger absensi pegawai (paralel dengan siswa/guru).
type StaffAttendanceModel struct {
	StaffAttendanceID uuid.UUID `gorm:"column:staff_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_attendance_id"`

	StaffAttendanceSchoolID uuid.UUID `gorm:"column:staff_attendance_school_id;type:uuid;not null;index" json:"staff_attendance_school_id"`
	StaffAttendanceStaffID  uuid.UUID `gorm:"column:staff_attendance_staff_id;type:uuid;not null;uniqueIndex:ux_staff_attendances_person_date" json:"staff_attendance_staff_id"`

	StaffAttendanceDate dbtime.DateYMD `gorm:"column:staff_attendance_date;type:date;not null;uniqueIndex:ux_staff_attendances_person_date" json:"staff_attendance_date"`

	StaffAttendanceStatus AttendanceStatus `gorm:"column:staff_attendance_status;type:attendance_status_enum;not null" json:"staff_attendance_status"`

	StaffAttendanceCreatedAt time.Time `gorm:"column:staff_attendance_created_at;type:timestamptz;not null;autoCreateTime" json:"staff_attendance_created_at"`
	StaffAttendanceUpdatedAt time.Time `gorm:"column:staff_attendance_updated_at;type:timestamptz;not null;autoUpdateTime" json:"staff_attendance_updated_at"`
}

func (StaffAttendanceModel) TableName() string { return "staff_attendances" }
