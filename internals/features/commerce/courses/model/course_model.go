// file: internals/features/commerce/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseTitle       string `gorm:"column:course_title;type:varchar(150);not null" json:"course_title"`
	CourseDescription string `gorm:"column:course_description;type:varchar(2000)" json:"course_description"`

	// harga dalam rupiah utuh
	CoursePrice int64 `gorm:"column:course_price;not null" json:"course_price"`
	// nil = akses lifetime setelah dibeli
	CourseDurationDays *int `gorm:"column:course_duration_days" json:"course_duration_days,omitempty"`

	CourseIsActive bool `gorm:"column:course_is_active;not null;default:true" json:"course_is_active"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;type:timestamptz;not null;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"column:course_updated_at;type:timestamptz;not null;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string { return "courses" }
