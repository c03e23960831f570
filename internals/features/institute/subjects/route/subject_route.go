// file: internals/features/institute/subjects/route/subject_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/institute/subjects/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

func SubjectAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	r := admin.Group("/subjects", authMw.AdminAuth(db, constants.PermManageSubjects))
	r.Post("/", ctl.CreateSubject)
	r.Patch("/:subjectId", ctl.UpdateSubject)
	r.Delete("/:subjectId", ctl.DeleteSubject)
}

func SubjectUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewSubjectController(db)

	r := user.Group("/subjects")
	r.Get("/", ctl.ListSubjects)
	r.Get("/:subjectId", ctl.GetSubject)
}
