// file: internals/features/commerce/orders/route/order_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/constants"
	"institutku_backend/internals/features/commerce/orders/controller"
	authMw "institutku_backend/internals/middlewares/auth"
)

// OrderPublicRoutes: webhook Midtrans (server-to-server, tanpa token).
func OrderPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrderController(db)
	public.Post("/payments/notification", ctl.HandleNotification)
}

func OrderUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrderController(db)

	r := user.Group("/orders")
	r.Post("/", ctl.CreateOrder)
	r.Get("/", ctl.ListMyOrders)
	r.Get("/:orderId", ctl.GetOrder)
}

func OrderAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewOrderController(db)

	r := admin.Group("/admin-orders", authMw.AdminAuth(db, constants.PermManageOrders))
	r.Get("/", ctl.ListAllOrders)
}
