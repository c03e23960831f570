// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	adminDTO "institutku_backend/internals/features/users/admin/dto"
	adminModel "institutku_backend/internals/features/users/admin/model"
	authDTO "institutku_backend/internals/features/users/auth/dto"
	"institutku_backend/internals/features/users/auth/service"
	userModel "institutku_backend/internals/features/users/user/model"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}

// GET /api/v1/auth/me
// Token admin (role ADMIN) diambilkan profil dari tabel admins, bukan users.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	if helperAuth.GetRole(c) == constants.RoleAdmin {
		adminID, err := helperAuth.GetAdminID(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		var admin adminModel.AdminModel
		if err := ac.DB.WithContext(c.Context()).First(&admin, "admin_id = ?", adminID).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		return helper.JsonOK(c, "Profile fetched successfully", adminDTO.FromAdminModel(admin))
	}

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := ac.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Profile fetched successfully", authDTO.FromUserModel(user))
}
