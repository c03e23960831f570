// file: internals/features/institute/subjects/controller/subject_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "institutku_backend/internals/features/institute/subjects/dto"
	m "institutku_backend/internals/features/institute/subjects/model"
	helper "institutku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validate: helper.Validator()}
}

// POST /api/v1/subjects
func (ctl *SubjectController) CreateSubject(c *fiber.Ctx) error {
	var req d.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	subject := req.ToModel()
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		code, er := helper.GenerateSubjectCode(tx, time.Now().Year(), subject.SubjectInitials)
		if er != nil {
			return er
		}
		subject.SubjectCode = code
		return tx.Create(&subject).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Subject created successfully", subject)
}

// GET /api/v1/subjects
func (ctl *SubjectController) ListSubjects(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.SubjectModel{})
	if q := c.Query("type"); q != "" {
		db = db.Where("subject_type = ?", q)
	}
	if q := c.Query("active"); q != "" {
		db = db.Where("subject_is_active = ?", q == "true")
	}
	if q := c.Query("search"); q != "" {
		db = db.Where("subject_name ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var subjects []m.SubjectModel
	if err := db.Order("subject_code").Offset(p.Offset).Limit(p.Limit).Find(&subjects).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Subjects fetched successfully", subjects,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/subjects/:subjectId
func (ctl *SubjectController) GetSubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}
	var subject m.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Subject fetched successfully", subject)
}

// PATCH /api/v1/subjects/:subjectId
func (ctl *SubjectController) UpdateSubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}

	var req d.UpdateSubjectRequest
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

	var subject m.SubjectModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&subject, "subject_id = ?", subjectID).Error; er != nil {
			return er
		}
		if er := tx.Model(&subject).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&subject, "subject_id = ?", subjectID).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Subject updated successfully", subject)
}

// DELETE /api/v1/subjects/:subjectId (soft delete)
func (ctl *SubjectController) DeleteSubject(c *fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subjectId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject ID format")
	}
	var subject m.SubjectModel
	if err := ctl.DB.WithContext(c.Context()).First(&subject, "subject_id = ?", subjectID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&subject).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Subject deleted successfully", fiber.Map{"subject_id": subjectID})
}
