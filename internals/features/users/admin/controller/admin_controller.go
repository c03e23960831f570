// file: internals/features/users/admin/controller/admin_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	d "institutku_backend/internals/features/users/admin/dto"
	m "institutku_backend/internals/features/users/admin/model"
	authHelper "institutku_backend/internals/features/users/auth/helper"
	authService "institutku_backend/internals/features/users/auth/service"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: helper.Validator()}
}

// POST /api/v1/auth/admin/login
// Token admin membawa claim admin_id; AdminAuth membaca ulang record admin
// per request sehingga pencabutan permission langsung berlaku.
func (ctl *AdminController) Login(c *fiber.Ctx) error {
	var req d.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin m.AdminModel
	err := ctl.DB.WithContext(c.Context()).
		First(&admin, "admin_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !authHelper.CheckPassword(admin.AdminPassword, req.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !admin.AdminIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, constants.ErrAdminInactive)
	}

	accessToken, err := authService.SignAccessToken(admin.AdminID, constants.RoleAdmin, map[string]any{
		"admin_id": admin.AdminID.String(),
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	authService.SetAuthCookie(c, accessToken)

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"admin":        d.FromAdminModel(admin),
		"access_token": accessToken,
	})
}

// POST /api/v1/admins
func (ctl *AdminController) CreateAdmin(c *fiber.Ctx) error {
	var req d.CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	for _, p := range req.Permissions {
		if !constants.IsKnownPermission(p) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown permission: "+p)
		}
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	admin := req.ToModel(hash)
	if err := ctl.DB.WithContext(c.Context()).Create(&admin).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Admin created successfully", d.FromAdminModel(admin))
}

// GET /api/v1/admins
func (ctl *AdminController) ListAdmins(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.AdminModel{})
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var admins []m.AdminModel
	if err := db.Order("admin_name").Offset(p.Offset).Limit(p.Limit).Find(&admins).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	items := make([]d.AdminResponse, 0, len(admins))
	for _, a := range admins {
		items = append(items, d.FromAdminModel(a))
	}
	return helper.JsonList(c, "Admins fetched successfully", items,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/admins/:adminId
func (ctl *AdminController) GetAdmin(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("adminId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin ID format")
	}
	var admin m.AdminModel
	if err := ctl.DB.WithContext(c.Context()).First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Admin fetched successfully", d.FromAdminModel(admin))
}

// PATCH /api/v1/admins/:adminId
func (ctl *AdminController) UpdateAdmin(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("adminId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin ID format")
	}

	var req d.UpdateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Permissions != nil {
		for _, p := range *req.Permissions {
			if !constants.IsKnownPermission(p) {
				return helper.JsonError(c, fiber.StatusBadRequest, "Unknown permission: "+p)
			}
		}
	}

	updates := map[string]any{}
	req.ApplyTo(updates)
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	var admin m.AdminModel
	err = ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.First(&admin, "admin_id = ?", adminID).Error; er != nil {
			return er
		}
		if er := tx.Model(&admin).Updates(updates).Error; er != nil {
			return er
		}
		return tx.First(&admin, "admin_id = ?", adminID).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Admin updated successfully", d.FromAdminModel(admin))
}

// DELETE /api/v1/admins/:adminId (soft delete)
func (ctl *AdminController) DeleteAdmin(c *fiber.Ctx) error {
	adminID, err := uuid.Parse(c.Params("adminId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid admin ID format")
	}
	// admin sesi tidak boleh menghapus dirinya sendiri
	if gate, ok := helperAuth.GetAdminGate(c); ok && gate.ID == adminID {
		return helper.JsonError(c, fiber.StatusBadRequest, "You cannot delete your own admin account")
	}
	var admin m.AdminModel
	if err := ctl.DB.WithContext(c.Context()).First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if err := ctl.DB.WithContext(c.Context()).Delete(&admin).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Admin deleted successfully", fiber.Map{"admin_id": adminID})
}
