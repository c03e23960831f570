// file: internals/features/institute/batches/model/batch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BatchModel struct {
	BatchID uuid.UUID `gorm:"column:batch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"batch_id"`

	BatchName     string     `gorm:"column:batch_name;type:varchar(100);not null" json:"batch_name"`
	BatchBranchID *uuid.UUID `gorm:"column:batch_branch_id;type:uuid;index" json:"batch_branch_id,omitempty"`

	BatchIsActive bool `gorm:"column:batch_is_active;not null;default:true" json:"batch_is_active"`

	BatchCreatedAt time.Time      `gorm:"column:batch_created_at;type:timestamptz;not null;autoCreateTime" json:"batch_created_at"`
	BatchUpdatedAt time.Time      `gorm:"column:batch_updated_at;type:timestamptz;not null;autoUpdateTime" json:"batch_updated_at"`
	BatchDeletedAt gorm.DeletedAt `gorm:"column:batch_deleted_at;index" json:"-"`
}

func (BatchModel) TableName() string { return "batches" }
