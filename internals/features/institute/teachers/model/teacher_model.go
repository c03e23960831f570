// file: internals/features/institute/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	TeacherName  string  `gorm:"column:teacher_name;type:varchar(100);not null" json:"teacher_name"`
	TeacherEmail string  `gorm:"column:teacher_email;type:varchar(120);not null;uniqueIndex" json:"teacher_email"`
	TeacherPhone *string `gorm:"column:teacher_phone;type:varchar(20)" json:"teacher_phone,omitempty"`

	// diisi handler upload foto (webp)
	TeacherPhotoURL *string `gorm:"column:teacher_photo_url;type:varchar(255)" json:"teacher_photo_url,omitempty"`

	TeacherIsActive bool `gorm:"column:teacher_is_active;not null;default:true" json:"teacher_is_active"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;type:timestamptz;not null;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;type:timestamptz;not null;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }
