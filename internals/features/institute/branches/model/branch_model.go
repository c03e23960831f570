// file: internals/features/institute/branches/model/branch_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BranchModel struct {
	BranchID uuid.UUID `gorm:"column:branch_id;type:uuid;default:gen_random_uuid();primaryKey" json:"branch_id"`

	BranchName     string `gorm:"column:branch_name;type:varchar(100);not null" json:"branch_name"`
	BranchCode     string `gorm:"column:branch_code;type:varchar(20);not null;uniqueIndex" json:"branch_code"`
	BranchAreaCode string `gorm:"column:branch_area_code;type:varchar(3);not null" json:"branch_area_code"`
	BranchAddress  string `gorm:"column:branch_address;type:varchar(500)" json:"branch_address"`

	BranchIsActive bool `gorm:"column:branch_is_active;not null;default:true" json:"branch_is_active"`

	BranchCreatedAt time.Time      `gorm:"column:branch_created_at;type:timestamptz;not null;autoCreateTime" json:"branch_created_at"`
	BranchUpdatedAt time.Time      `gorm:"column:branch_updated_at;type:timestamptz;not null;autoUpdateTime" json:"branch_updated_at"`
	BranchDeletedAt gorm.DeletedAt `gorm:"column:branch_deleted_at;index" json:"-"`
}

func (BranchModel) TableName() string { return "branches" }
