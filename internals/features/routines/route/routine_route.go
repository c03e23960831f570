// file: internals/features/routines/route/routine_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/routines/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

// RoutineAdminRoutes: semua operasi tulis jadwal dibatasi admin aktif
// dengan permission manage_routines.
func RoutineAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoutineController(db)

	r := admin.Group("/routines", authMw.AdminAuth(db, constants.PermManageRoutines))
	r.Post("/", ctl.CreateRoutine)
	r.Post("/:routineId/teachers", ctl.AssignTeachers)
	r.Post("/:routineId/batches", ctl.AssignBatches)
	r.Delete("/:routineId", ctl.DeleteRoutine)
}

// RoutineUserRoutes: listing & detail jadwal untuk user login.
func RoutineUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoutineController(db)

	r := user.Group("/routines")
	r.Get("/", ctl.ListRoutines)
	r.Get("/:routineId", ctl.GetRoutine)
}
