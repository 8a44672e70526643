// file: internals/features/school/people/model/staff_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffModel — pegawai non-guru. Read-only bagi engine libur/absensi.
type StaffModel struct {
	StaffID uuid.UUID `gorm:"column:staff_id;type:uuid;default:gen_random_uuid();primaryKey" json:"staff_id"`

	StaffSchoolID uuid.UUID `gorm:"column:staff_school_id;type:uuid;not null;index" json:"staff_school_id"`

	StaffName string `gorm:"column:staff_name;type:varchar(120);not null" json:"staff_name"`

	StaffCreatedAt time.Time      `gorm:"column:staff_created_at;type:timestamptz;not null;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt time.Time      `gorm:"column:staff_updated_at;type:timestamptz;not null;autoUpdateTime" json:"staff_updated_at"`
	StaffDeletedAt gorm.DeletedAt `gorm:"column:staff_deleted_at;index" json:"staff_deleted_at,omitempty"`
}

func (StaffModel) TableName() string { return "staffs" }
