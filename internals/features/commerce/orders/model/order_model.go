// file: internals/features/commerce/orders/model/order_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatusEnum string

const (
	OrderStatusPending  OrderStatusEnum = "PENDING"
	OrderStatusPaid     OrderStatusEnum = "PAID"
	OrderStatusExpired  OrderStatusEnum = "EXPIRED"
	OrderStatusCanceled OrderStatusEnum = "CANCELED"
)

type OrderModel struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`

	// order_code dikirim ke Midtrans sebagai OrderID dan dipakai webhook untuk lookup
	OrderCode   string    `gorm:"column:order_code;type:varchar(40);not null;uniqueIndex" json:"order_code"`
	OrderUserID uuid.UUID `gorm:"column:order_user_id;type:uuid;not null;index" json:"order_user_id"`

	OrderAmount int64           `gorm:"column:order_amount;not null" json:"order_amount"`
	OrderStatus OrderStatusEnum `gorm:"column:order_status;type:varchar(10);not null;default:'PENDING'" json:"order_status"`

	OrderSnapToken   *string    `gorm:"column:order_snap_token;type:varchar(255)" json:"order_snap_token,omitempty"`
	OrderRedirectURL *string    `gorm:"column:order_redirect_url;type:varchar(500)" json:"order_redirect_url,omitempty"`
	OrderPaidAt      *time.Time `gorm:"column:order_paid_at;type:timestamptz" json:"order_paid_at,omitempty"`

	OrderCreatedAt time.Time      `gorm:"column:order_created_at;type:timestamptz;not null;autoCreateTime" json:"order_created_at"`
	OrderUpdatedAt time.Time      `gorm:"column:order_updated_at;type:timestamptz;not null;autoUpdateTime" json:"order_updated_at"`
	OrderDeletedAt gorm.DeletedAt `gorm:"column:order_deleted_at;index" json:"-"`
}

func (OrderModel) TableName() string { return "orders" }

type OrderItemModel struct {
	OrderItemID       uuid.UUID `gorm:"column:order_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_item_id"`
	OrderItemOrderID  uuid.UUID `gorm:"column:order_item_order_id;type:uuid;not null;index" json:"order_item_order_id"`
	OrderItemCourseID uuid.UUID `gorm:"column:order_item_course_id;type:uuid;not null;index" json:"order_item_course_id"`
	// snapshot harga saat checkout
	OrderItemPrice     int64     `gorm:"column:order_item_price;not null" json:"order_item_price"`
	OrderItemCreatedAt time.Time `gorm:"column:order_item_created_at;type:timestamptz;not null;autoCreateTime" json:"order_item_created_at"`
}

func (OrderItemModel) TableName() string { return "order_items" }
