// file: internals/features/institute/teachers/controller/teacher_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/configs"
	d "institutku_backend/internals/features/institute/teachers/dto"
	m "institutku_backend/internals/features/institute/teachers/model"
	helper "institutku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db, Validate: helper.Validator()}
}

// POST /api/v1/teachers
func (ctl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	teacher := req.ToModel()
	if err := ctl.DB.WithContext(c.Context()).Create(&teacher).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Teacher created successfully", teacher)
}

// GET /api/v1/teachers
func (ctl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.TeacherModel{})
	if q := c.Query("active"); q != "" {
		db = db.Where("teacher_is_active = ?", q == "true")
	}
	if q := c.Query("search"); q != "" {
		db = db.Where("teacher_name ILIKE ? OR teacher_email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var teachers []m.TeacherModel
	if err := db.Order("teacher_name").Offset(p.Offset).Limit(p.Limit).Find(&teachers).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Teachers fetched successfully", teachers,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/teachers/:teacherId
func (ctl *TeacherController) GetTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID format")
	}
	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Teacher fetched successfully", teacher)
}

// PATCH /api/v1/teachers/:teacherId
func (ctl *TeacherController) UpdateTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID format")
	}

	var req d.UpdateTeacherRequest
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

	var teacher m.TeacherModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&teacher, "teacher_id = ?", teacherID).Error; er != nil {
			return er
		}
		if er := tx.Model(&teacher).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&teacher, "teacher_id = ?", teacherID).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher updated successfully", teacher)
}

// PUT /api/v1/teachers/:teacherId/photo (multipart, field "photo")
func (ctl *TeacherController) UploadTeacherPhoto(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID format")
	}

	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Photo file is required")
	}

	url, err := helper.SaveWebPUpload(configs.UploadDir, "teachers", fileHeader)
	if err != nil {
		log.Printf("[Teacher.Photo] konversi/simpan gagal: %v", err)
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to process photo")
	}

	if err := ctl.DB.WithContext(c.Context()).
		Model(&teacher).
		Update("teacher_photo_url", url).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher photo updated successfully", fiber.Map{
		"teacher_id":        teacherID,
		"teacher_photo_url": url,
	})
}

// DELETE /api/v1/teachers/:teacherId (soft delete)
func (ctl *TeacherController) DeleteTeacher(c *fiber.Ctx) error {
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID format")
	}
	var teacher m.TeacherModel
	if err := ctl.DB.WithContext(c.Context()).First(&teacher, "teacher_id = ?", teacherID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&teacher).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Teacher deleted successfully", fiber.Map{"teacher_id": teacherID})
}
