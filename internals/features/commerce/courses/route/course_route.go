// file: internals/features/commerce/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/commerce/courses/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

func CourseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	r := admin.Group("/courses", authMw.AdminAuth(db, constants.PermManageCourses))
	r.Post("/", ctl.CreateCourse)
	r.Patch("/:courseId", ctl.UpdateCourse)
	r.Delete("/:courseId", ctl.DeleteCourse)
}

func CoursePublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	r := public.Group("/courses")
	r.Get("/", ctl.ListCourses)
	r.Get("/:courseId", ctl.GetCourse)
}
