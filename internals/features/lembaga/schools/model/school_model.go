// file: internals/features/lembaga/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel — tenant. Semua entitas lain di-scope oleh school_id.
// Propagator (broadcast libur) membaca tabel ini untuk daftar tenant aktif.
type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName string  `gorm:"column:school_name;type:varchar(150);not null" json:"school_name"`
	SchoolSlug *string `gorm:"column:school_slug;type:varchar(160)" json:"school_slug,omitempty"`

	SchoolIsActive bool `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`

	// audit
	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;type:timestamptz;not null;autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;type:timestamptz;not null;autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
