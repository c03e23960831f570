// file: internals/features/institute/branches/controller/branch_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	batchModel "institutku_backend/internals/features/institute/batches/model"
	d "institutku_backend/internals/features/institute/branches/dto"
	m "institutku_backend/internals/features/institute/branches/model"
	helper "institutku_backend/internals/helpers"
)

type BranchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBranchController(db *gorm.DB) *BranchController {
	return &BranchController{DB: db, Validate: helper.Validator()}
}

// POST /api/v1/branches
// Kode cabang dibangkitkan di dalam transaksi yang sama dengan insert
// supaya sequence tidak bolong saat insert gagal.
func (ctl *BranchController) CreateBranch(c *fiber.Ctx) error {
	var req d.CreateBranchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	branch := req.ToModel()
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		code, er := helper.GenerateBranchCode(tx, time.Now().Year(), branch.BranchAreaCode)
		if er != nil {
			return er
		}
		branch.BranchCode = code
		return tx.Create(&branch).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Branch created successfully", branch)
}

// GET /api/v1/branches
func (ctl *BranchController) ListBranches(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.BranchModel{})
	if q := c.Query("active"); q != "" {
		db = db.Where("branch_is_active = ?", q == "true")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var branches []m.BranchModel
	if err := db.Order("branch_code").Offset(p.Offset).Limit(p.Limit).Find(&branches).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Branches fetched successfully", branches,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/branches/:branchId
func (ctl *BranchController) GetBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("branchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}
	var branch m.BranchModel
	if err := ctl.DB.WithContext(c.Context()).First(&branch, "branch_id = ?", branchID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Branch fetched successfully", branch)
}

// GET /api/v1/branches/:branchId/batches
func (ctl *BranchController) ListBranchBatches(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("branchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}

	var branch m.BranchModel
	if err := ctl.DB.WithContext(c.Context()).First(&branch, "branch_id = ?", branchID).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var batches []batchModel.BatchModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("batch_branch_id = ?", branchID).
		Order("batch_name").
		Find(&batches).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Branch batches fetched successfully", fiber.Map{
		"branch":  branch,
		"batches": batches,
	})
}

// PATCH /api/v1/branches/:branchId
func (ctl *BranchController) UpdateBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("branchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}

	var req d.UpdateBranchRequest
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

	var branch m.BranchModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&branch, "branch_id = ?", branchID).Error; er != nil {
			return er
		}
		if er := tx.Model(&branch).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&branch, "branch_id = ?", branchID).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Branch updated successfully", branch)
}

// DELETE /api/v1/branches/:branchId (soft delete)
func (ctl *BranchController) DeleteBranch(c *fiber.Ctx) error {
	branchID, err := uuid.Parse(c.Params("branchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID format")
	}

	var branch m.BranchModel
	if err := ctl.DB.WithContext(c.Context()).First(&branch, "branch_id = ?", branchID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&branch).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Branch deleted successfully", fiber.Map{"branch_id": branchID})
}
