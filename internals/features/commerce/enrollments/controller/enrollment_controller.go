// file: internals/features/commerce/enrollments/controller/enrollment_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	m "institutku_backend/internals/features/commerce/enrollments/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// GET /api/v1/enrollments (punya user sendiri)
func (ctl *EnrollmentController) ListMyEnrollments(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helper.ResolvePaging(c, 20, 100)
	db := ctl.DB.WithContext(c.Context()).
		Model(&m.CourseEnrollmentModel{}).
		Where("enrollment_user_id = ?", userID)
	if q := c.Query("active"); q != "" {
		db = db.Where("enrollment_is_active = ?", q == "true")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var enrollments []m.CourseEnrollmentModel
	if err := db.Order("enrollment_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&enrollments).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Enrollments fetched successfully", enrollments,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/admin-enrollments?course_id=&user_id= (admin)
func (ctl *EnrollmentController) ListEnrollments(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.CourseEnrollmentModel{})
	if q := c.Query("course_id"); q != "" {
		courseID, err := uuid.Parse(q)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
		}
		db = db.Where("enrollment_course_id = ?", courseID)
	}
	if q := c.Query("user_id"); q != "" {
		userID, err := uuid.Parse(q)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
		}
		db = db.Where("enrollment_user_id = ?", userID)
	}
	if q := c.Query("active"); q != "" {
		db = db.Where("enrollment_is_active = ?", q == "true")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var enrollments []m.CourseEnrollmentModel
	if err := db.Order("enrollment_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&enrollments).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Enrollments fetched successfully", enrollments,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
