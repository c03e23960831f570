// file: internals/features/commerce/orders/dto/order_dto.go
package dto

import (
	"github.com/google/uuid"
)

type CreateOrderRequest struct {
	Courses []uuid.UUID `json:"courses" validate:"required,min=1"`
}
