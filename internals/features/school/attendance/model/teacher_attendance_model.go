// file: internals/features/school/attendance/model/teacher_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/dbtime"
)

// TeacherAttendanceModel — ledger absensi guru (paralel dengan siswa).
type TeacherAttendanceModel struct {
	TeacherAttendanceID uuid.UUID `gorm:"column:teacher_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_attendance_id"`

	TeacherAttendanceSchoolID  uuid.UUID `gorm:"column:teacher_attendance_school_id;type:uuid;not null;index" json:"teacher_attendance_school_id"`
	TeacherAttendanceTeacherID uuid.UUID `gorm:"column:teacher_attendance_teacher_id;type:uuid;not null;uniqueIndex:ux_teacher_attendances_person_date" json:"teacher_attendance_teacher_id"`

	TeacherAttendanceDate dbtime.DateYMD `gorm:"column:teacher_attendance_date;type:date;not null;uniqueIndex:ux_teacher_attendances_person_date" json:"teacher_attendance_date"`

	TeacherAttendanceStatus AttendanceStatus `gorm:"column:teacher_attendance_status;type:attendance_status_enum;not null" json:"teacher_attendance_status"`

	TeacherAttendanceCreatedAt time.Time `gorm:"column:teacher_attendance_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_attendance_created_at"`
	TeacherAttendanceUpdatedAt time.Time `gorm:"column:teacher_attendance_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_attendance_updated_at"`
}

func (TeacherAttendanceModel) TableName() string { return "teacher_attendances" }
