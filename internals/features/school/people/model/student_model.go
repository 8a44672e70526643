// file: internals/features/school/people/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel — dimiliki komponen People (di luar engine ini).
// Reconciler hanya membaca id + scope tenant + flag soft-delete;
// tidak pernah menulis ke tabel ini.
type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`

	StudentSchoolID uuid.UUID `gorm:"column:student_school_id;type:uuid;not null;index" json:"student_school_id"`

	StudentName string `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;type:timestamptz;not null;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;type:timestamptz;not null;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
