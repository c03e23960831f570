// file: internals/features/commerce/enrollments/model/enrollment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EnrollmentTypeEnum string

const (
	EnrollmentLifetime  EnrollmentTypeEnum = "LIFETIME"
	EnrollmentTimeBound EnrollmentTypeEnum = "TIME_BOUND"
)

// CourseEnrollmentModel dibuat non-aktif saat checkout dan diaktifkan oleh
// webhook pembayaran dalam transaksi yang sama dengan update status order.
type CourseEnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"column:enrollment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"enrollment_id"`

	// satu baris hidup per (user, course); index unik parsial menjaga
	// invariannya juga saat dua checkout berjalan bersamaan
	EnrollmentUserID   uuid.UUID `gorm:"column:enrollment_user_id;type:uuid;not null;index;uniqueIndex:uq_enrollments_user_course_alive,where:enrollment_deleted_at IS NULL" json:"enrollment_user_id"`
	EnrollmentCourseID uuid.UUID `gorm:"column:enrollment_course_id;type:uuid;not null;index;uniqueIndex:uq_enrollments_user_course_alive" json:"enrollment_course_id"`
	EnrollmentOrderID  uuid.UUID `gorm:"column:enrollment_order_id;type:uuid;not null;index" json:"enrollment_order_id"`

	EnrollmentType      EnrollmentTypeEnum `gorm:"column:enrollment_type;type:varchar(10);not null" json:"enrollment_type"`
	EnrollmentStartsAt  *time.Time         `gorm:"column:enrollment_starts_at;type:timestamptz" json:"enrollment_starts_at,omitempty"`
	EnrollmentExpiresAt *time.Time         `gorm:"column:enrollment_expires_at;type:timestamptz" json:"enrollment_expires_at,omitempty"`

	EnrollmentIsActive bool `gorm:"column:enrollment_is_active;not null;default:false" json:"enrollment_is_active"`

	EnrollmentCreatedAt time.Time      `gorm:"column:enrollment_created_at;type:timestamptz;not null;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt time.Time      `gorm:"column:enrollment_updated_at;type:timestamptz;not null;autoUpdateTime" json:"enrollment_updated_at"`
	EnrollmentDeletedAt gorm.DeletedAt `gorm:"column:enrollment_deleted_at;index" json:"-"`
}

func (CourseEnrollmentModel) TableName() string { return "course_enrollments" }
