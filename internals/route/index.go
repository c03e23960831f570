// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/configs"
	courseRoute "institutku_backend/internals/features/commerce/courses/route"
	enrollmentRoute "institutku_backend/internals/features/commerce/enrollments/route"
	orderRoute "institutku_backend/internals/features/commerce/orders/route"
	batchRoute "institutku_backend/internals/features/institute/batches/route"
	branchRoute "institutku_backend/internals/features/institute/branches/route"
	subjectRoute "institutku_backend/internals/features/institute/subjects/route"
	teacherRoute "institutku_backend/internals/features/institute/teachers/route"
	routineRoute "institutku_backend/internals/features/routines/route"
	adminRoute "institutku_backend/internals/features/users/admin/route"
	authRoute "institutku_backend/internals/features/users/auth/route"
	"institutku_backend/internals/middlewares"
	authMw "institutku_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh surface HTTP di bawah /api/v1.
// Tiga lapis: public (tanpa token), user (JWT), admin (JWT; gate permission
// per-group di masing-masing feature route).
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// file hasil upload (foto teacher dsb)
	app.Static("/uploads", configs.UploadDir)

	api := app.Group("/api/v1")
	BaseRoutes(api, db)

	/* ---------- PUBLIC ---------- */
	authRoute.AuthPublicRoutes(api, db)
	adminRoute.AdminPublicRoutes(api, db)
	courseRoute.CoursePublicRoutes(api, db)
	orderRoute.OrderPublicRoutes(api, db)

	jwtOpts := authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}

	/* ---------- USER (token valid) ---------- */
	user := api.Group("", authMw.AuthJWT(jwtOpts), middlewares.BranchContext(db))
	authRoute.AuthUserRoutes(user, db)
	branchRoute.BranchUserRoutes(user, db)
	batchRoute.BatchUserRoutes(user, db)
	subjectRoute.SubjectUserRoutes(user, db)
	teacherRoute.TeacherUserRoutes(user, db)
	routineRoute.RoutineUserRoutes(user, db)
	orderRoute.OrderUserRoutes(user, db)
	enrollmentRoute.EnrollmentUserRoutes(user, db)

	/* ---------- ADMIN (token valid + gate per-group) ---------- */
	admin := api.Group("", authMw.AuthJWT(jwtOpts))
	branchRoute.BranchAdminRoutes(admin, db)
	batchRoute.BatchAdminRoutes(admin, db)
	subjectRoute.SubjectAdminRoutes(admin, db)
	teacherRoute.TeacherAdminRoutes(admin, db)
	routineRoute.RoutineAdminRoutes(admin, db)
	adminRoute.AdminManagementRoutes(admin, db)
	courseRoute.CourseAdminRoutes(admin, db)
	orderRoute.OrderAdminRoutes(admin, db)
	enrollmentRoute.EnrollmentAdminRoutes(admin, db)
}
