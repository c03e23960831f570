// file: internals/features/commerce/courses/controller/course_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "institutku_backend/internals/features/commerce/courses/dto"
	m "institutku_backend/internals/features/commerce/courses/model"
	helper "institutku_backend/internals/helpers"
)

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: helper.Validator()}
}

// POST /api/v1/courses
func (ctl *CourseController) CreateCourse(c *fiber.Ctx) error {
	var req d.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	course := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Course created successfully", course)
}

// GET /api/v1/courses
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.CourseModel{})
	if q := c.Query("active"); q != "" {
		db = db.Where("course_is_active = ?", q == "true")
	}
	if q := c.Query("search"); q != "" {
		db = db.Where("course_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var courses []m.CourseModel
	if err := db.Order("course_title").Offset(p.Offset).Limit(p.Limit).Find(&courses).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Courses fetched successfully", courses,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/courses/:courseId
func (ctl *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	var course m.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Course fetched successfully", course)
}

// PATCH /api/v1/courses/:courseId
func (ctl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}

	var req d.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]any{}
	req.ApplyTo(updates)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var course m.CourseModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&course, "course_id = ?", courseID).Error; er != nil {
			return er
		}
		if er := tx.Model(&course).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&course, "course_id = ?", courseID).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Course updated successfully", course)
}

// DELETE /api/v1/courses/:courseId (soft delete)
func (ctl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID format")
	}
	var course m.CourseModel
	if err := ctl.DB.WithContext(c.Context()).First(&course, "course_id = ?", courseID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&course).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Course deleted successfully", fiber.Map{"course_id": courseID})
}
