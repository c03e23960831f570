// file: internals/features/institute/batches/controller/batch_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "institutku_backend/internals/features/institute/batches/dto"
	m "institutku_backend/internals/features/institute/batches/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type BatchController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBatchController(db *gorm.DB) *BatchController {
	return &BatchController{DB: db, Validate: helper.Validator()}
}

// POST /api/v1/batches
func (ctl *BatchController) CreateBatch(c *fiber.Ctx) error {
	var req d.CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	batch := req.ToModel()
	err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if batch.BatchBranchID != nil {
			var exists bool
			if er := tx.Raw(
				`SELECT EXISTS (SELECT 1 FROM branches WHERE branch_id = ? AND branch_deleted_at IS NULL)`,
				*batch.BatchBranchID,
			).Scan(&exists).Error; er != nil {
				return er
			}
			if !exists {
				return fiber.NewError(fiber.StatusBadRequest, "Branch not found")
			}
		}
		return tx.Create(&batch).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Batch created successfully", batch)
}

// GET /api/v1/batches
func (ctl *BatchController) ListBatches(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.BatchModel{})
	if ids, ok := helperAuth.GetBranchBatchIDs(c); ok {
		// BranchContext sudah memverifikasi cabang dan mengumpulkan
		// batch-nya; cukup pakai hasilnya
		db = db.Where("batch_id IN ?", ids)
	} else if q := c.Query("branch_id"); q != "" {
		branchID, err := uuid.Parse(q)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid branch ID format")
		}
		db = db.Where("batch_branch_id = ?", branchID)
	}
	if q := c.Query("active"); q != "" {
		db = db.Where("batch_is_active = ?", q == "true")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var batches []m.BatchModel
	if err := db.Order("batch_name").Offset(p.Offset).Limit(p.Limit).Find(&batches).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Batches fetched successfully", batches,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/batches/:batchId
func (ctl *BatchController) GetBatch(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}
	var batch m.BatchModel
	if err := ctl.DB.WithContext(c.Context()).First(&batch, "batch_id = ?", batchID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Batch fetched successfully", batch)
}

// PATCH /api/v1/batches/:batchId
func (ctl *BatchController) UpdateBatch(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}

	var req d.UpdateBatchRequest
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

	var batch m.BatchModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&batch, "batch_id = ?", batchID).Error; er != nil {
			return er
		}
		if id, ok := updates["batch_branch_id"]; ok {
			var exists bool
			if er := tx.Raw(
				`SELECT EXISTS (SELECT 1 FROM branches WHERE branch_id = ? AND branch_deleted_at IS NULL)`,
				id,
			).Scan(&exists).Error; er != nil {
				return er
			}
			if !exists {
				return fiber.NewError(fiber.StatusBadRequest, "Branch not found")
			}
		}
		if er := tx.Model(&batch).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&batch, "batch_id = ?", batchID).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Batch updated successfully", batch)
}

// DELETE /api/v1/batches/:batchId (soft delete)
func (ctl *BatchController) DeleteBatch(c *fiber.Ctx) error {
	batchID, err := uuid.Parse(c.Params("batchId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid batch ID format")
	}
	var batch m.BatchModel
	if err := ctl.DB.WithContext(c.Context()).First(&batch, "batch_id = ?", batchID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&batch).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Batch deleted successfully", fiber.Map{"batch_id": batchID})
}
