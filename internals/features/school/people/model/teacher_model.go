// file: internals/features/school/people/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeacherModel — read-only bagi engine libur/absensi.
type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	TeacherSchoolID uuid.UUID `gorm:"column:teacher_school_id;type:uuid;not null;index" json:"teacher_school_id"`

	TeacherName string `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string { return "teachers" }
