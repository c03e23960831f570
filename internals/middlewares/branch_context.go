// file: internals/middlewares/branch_context.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	branchModel "institutku_backend/internals/features/institute/branches/model"
	helperAuth "institutku_backend/internals/helpers/auth"
)

// BranchContext membaca X-Branch-Id (header, fallback query branch_id),
// memverifikasi cabang hidup, dan menaruh branch_id + daftar batch_id
// milik cabang di locals. Opsional: tanpa header, request jalan terus.
func BranchContext(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Get("X-Branch-Id"))
		if raw == "" {
			raw = strings.TrimSpace(c.Query("branch_id"))
		}
		if raw == "" {
			return c.Next()
		}

		branchID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid branch ID format")
		}

		var branch branchModel.BranchModel
		if err := db.WithContext(c.Context()).
			Select("branch_id").
			First(&branch, "branch_id = ? AND branch_is_active = true", branchID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Branch not found")
			}
			return err
		}

		var batchIDs []uuid.UUID
		if err := db.WithContext(c.Context()).
			Table("batches").
			Where("batch_branch_id = ? AND batch_deleted_at IS NULL", branchID).
			Pluck("batch_id", &batchIDs).Error; err != nil {
			return err
		}

		c.Locals(helperAuth.LocBranchID, branchID.String())
		c.Locals(helperAuth.LocBranchBatch, batchIDs)
		return c.Next()
	}
}
