// file: internals/features/institute/branches/route/branch_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/institute/branches/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

func BranchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBranchController(db)

	r := admin.Group("/branches", authMw.AdminAuth(db, constants.PermManageBranches))
	r.Post("/", ctl.CreateBranch)
	r.Patch("/:branchId", ctl.UpdateBranch)
	r.Delete("/:branchId", ctl.DeleteBranch)
}

func BranchUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewBranchController(db)

	r := user.Group("/branches")
	r.Get("/", ctl.ListBranches)
	r.Get("/:branchId", ctl.GetBranch)
	r.Get("/:branchId/batches", ctl.ListBranchBatches)
}
