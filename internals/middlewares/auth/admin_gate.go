package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	adminModel "institutku_backend/internals/features/users/admin/model"
	helperAuth "institutku_backend/internals/helpers/auth"
)

// AdminAuth memuat admin dari identitas sesi dan menolak sebelum business logic:
// 401 identitas hilang/invalid, 404 admin tidak ada, 403 bukan ADMIN,
// 403 akun nonaktif, 403 permission kurang. Identitas aktor diambil
// eksklusif dari token terverifikasi (tidak ada fallback ke body).
func AdminAuth(db *gorm.DB, requiredPermissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, err := helperAuth.GetAdminID(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing admin ID")
		}

		var admin adminModel.AdminModel
		if err := db.WithContext(c.Context()).
			Select("admin_id", "admin_role", "admin_permissions", "admin_is_active").
			First(&admin, "admin_id = ?", adminID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Admin not found")
			}
			log.Printf("[AdminAuth] DB error: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if admin.AdminRole != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrAdminsOnly)
		}
		if !admin.AdminIsActive {
			return fiber.NewError(fiber.StatusForbidden, constants.ErrAdminInactive)
		}
		if !admin.HasAnyPermission(requiredPermissions) {
			return fiber.NewError(fiber.StatusForbidden,
				fmt.Sprintf("Missing required permission: %s", strings.Join(requiredPermissions, " or ")))
		}

		// identitas tersanitasi untuk handler downstream
		c.Locals(helperAuth.LocAdmin, helperAuth.AdminGateInfo{
			ID:          admin.AdminID,
			Role:        admin.AdminRole,
			Permissions: admin.AdminPermissions,
			IsActive:    admin.AdminIsActive,
		})

		return c.Next()
	}
}
