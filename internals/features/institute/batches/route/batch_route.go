// file: internals/features/institute/batches/route/batch_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/institute/batches/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

func BatchAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewBatchController(db)

	r := admin.Group("/batches", authMw.AdminAuth(db, constants.PermManageBatches))
	r.Post("/", ctl.CreateBatch)
	r.Patch("/:batchId", ctl.UpdateBatch)
	r.Delete("/:batchId", ctl.DeleteBatch)
}

func BatchUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewBatchController(db)

	r := user.Group("/batches")
	r.Get("/", ctl.ListBatches)
	r.Get("/:batchId", ctl.GetBatch)
}
