// file: internals/features/institute/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/institute/teachers/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db)

	r := admin.Group("/teachers", authMw.AdminAuth(db, constants.PermManageTeachers))
	r.Post("/", ctl.CreateTeacher)
	r.Patch("/:teacherId", ctl.UpdateTeacher)
	r.Put("/:teacherId/photo", ctl.UploadTeacherPhoto)
	r.Delete("/:teacherId", ctl.DeleteTeacher)
}

func TeacherUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeacherController(db)

	r := user.Group("/teachers")
	r.Get("/", ctl.ListTeachers)
	r.Get("/:teacherId", ctl.GetTeacher)
}
