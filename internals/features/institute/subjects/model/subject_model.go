// file: internals/features/institute/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectTypeEnum string

const (
	SubjectTypeTheory   SubjectTypeEnum = "THEORY"
	SubjectTypeLab      SubjectTypeEnum = "LAB"
	SubjectTypeSeminar  SubjectTypeEnum = "SEMINAR"
	SubjectTypeOptional SubjectTypeEnum = "OPTIONAL"
)

type SubjectModel struct {
	SubjectID uuid.UUID `gorm:"column:subject_id;type:uuid;default:gen_random_uuid();primaryKey" json:"subject_id"`

	SubjectName     string `gorm:"column:subject_name;type:varchar(100);not null" json:"subject_name"`
	SubjectInitials string `gorm:"column:subject_initials;type:varchar(5);not null" json:"subject_initials"`
	// KRJ-YYYY-INI-NNN, dibangkitkan dari counters di dalam transaksi create
	SubjectCode string `gorm:"column:subject_code;type:varchar(20);not null;uniqueIndex" json:"subject_code"`

	SubjectType        SubjectTypeEnum `gorm:"column:subject_type;type:varchar(10);not null;default:'THEORY'" json:"subject_type"`
	SubjectDescription string          `gorm:"column:subject_description;type:varchar(1000)" json:"subject_description"`

	SubjectIsActive bool `gorm:"column:subject_is_active;not null;default:true" json:"subject_is_active"`

	SubjectCreatedAt time.Time      `gorm:"column:subject_created_at;type:timestamptz;not null;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"column:subject_updated_at;type:timestamptz;not null;autoUpdateTime" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }
