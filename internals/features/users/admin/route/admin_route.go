// file: internals/features/users/admin/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/users/admin/controller"
	"institutku_backend/internals/middlewares"
	authMw "institutku_backend/internals/middlewares/auth"
)

// AdminPublicRoutes: login admin (tanpa token).
func AdminPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdminController(db)
	public.Post("/auth/admin/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AdminManagementRoutes: CRUD admin, hanya untuk admin ber-permission manage_admins.
func AdminManagementRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewAdminController(db)

	r := admin.Group("/admins", authMw.AdminAuth(db, constants.PermManageAdmins))
	r.Post("/", ctl.CreateAdmin)
	r.Get("/", ctl.ListAdmins)
	r.Get("/:adminId", ctl.GetAdmin)
	r.Patch("/:adminId", ctl.UpdateAdmin)
	r.Delete("/:adminId", ctl.DeleteAdmin)
}
