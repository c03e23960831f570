// file: internals/features/commerce/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/commerce/enrollments/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

func EnrollmentUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)
	user.Get("/enrollments", ctl.ListMyEnrollments)
}

func EnrollmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewEnrollmentController(db)
	admin.Get("/admin-enrollments",
		authMw.AdminAuth(db, constants.PermManageEnrollments),
		ctl.ListEnrollments)
}
