// file: internals/features/commerce/orders/controller/order_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "institutku_backend/internals/features/commerce/orders/dto"
	m "institutku_backend/internals/features/commerce/orders/model"
	"institutku_backend/internals/features/commerce/orders/service"
	helper "institutku_backend/internals/helpers"
	helperAuth "institutku_backend/internals/helpers/auth"
)

type OrderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Validate: helper.Validator(), Service: service.New(db)}
}

// POST /api/v1/orders
func (ctl *OrderController) CreateOrder(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req d.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	order, err := ctl.Service.CreateOrder(c.Context(), userID, req.Courses)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Order created successfully", order)
}

// GET /api/v1/orders (punya user sendiri)
func (ctl *OrderController) ListMyOrders(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	p := helper.ResolvePaging(c, 20, 100)
	db := ctl.DB.WithContext(c.Context()).Model(&m.OrderModel{}).Where("order_user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var orders []m.OrderModel
	if err := db.Order("order_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&orders).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Orders fetched successfully", orders,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/v1/orders/:orderId
func (ctl *OrderController) GetOrder(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid order ID format")
	}

	var order m.OrderModel
	if err := ctl.DB.WithContext(c.Context()).
		First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var items []m.OrderItemModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("order_item_order_id = ?", orderID).Find(&items).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Order fetched successfully", fiber.Map{
		"order": order,
		"items": items,
	})
}

// POST /api/v1/payments/notification (dipanggil Midtrans, tanpa auth)
func (ctl *OrderController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Service.HandleStatusWebhook(c.Context(), body); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Notification processed", nil)
}

// GET /api/v1/admin-orders (semua order, untuk admin)
func (ctl *OrderController) ListAllOrders(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	db := ctl.DB.WithContext(c.Context()).Model(&m.OrderModel{})
	if q := c.Query("status"); q != "" {
		db = db.Where("order_status = ?", q)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var orders []m.OrderModel
	if err := db.Order("order_created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&orders).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Orders fetched successfully", orders,
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}
