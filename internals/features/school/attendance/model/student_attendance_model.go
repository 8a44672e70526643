// file: internals/features/school/attendance/model/student_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/helpers/dbtime"
)

// StudentAttendanceModel — ledger absensi siswa.
// Maksimal satu baris per (student_id, date); unique index dipakai dua arah:
// DoNothing saat create manual, DoUpdates (status := holiday) saat reconcile.
type StudentAttendanceModel struct {
	StudentAttendanceID uuid.UUID `gorm:"column:student_attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_attendance_id"`

	StudentAttendanceSchoolID  uuid.UUID `gorm:"column:student_attendance_school_id;type:uuid;not null;index" json:"student_attendance_school_id"`
	StudentAttendanceStudentID uuid.UUID `gorm:"column:student_attendance_student_id;type:uuid;not null;uniqueIndex:ux_student_attendances_person_date" json:"student_attendance_student_id"`

	StudentAttendanceDate dbtime.DateYMD `gorm:"column:student_attendance_date;type:date;not null;uniqueIndex:ux_student_attendances_person_date" json:"student_attendance_date"`

	StudentAttendanceStatus AttendanceStatus `gorm:"column:student_attendance_status;type:attendance_status_enum;not null" json:"student_attendance_status"`

	StudentAttendanceCreatedAt time.Time `gorm:"column:student_attendance_created_at;type:timestamptz;not null;autoCreateTime" json:"student_attendance_created_at"`
	StudentAttendanceUpdatedAt time.Time `gorm:"column:student_attendance_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_attendance_updated_at"`
}

func (StudentAttendanceModel) TableName() string { return "student_attendances" }
