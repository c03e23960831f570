// file: internals/features/commerce/orders/service/order_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	courseModel "institutku_backend/internals/features/commerce/courses/model"
	enrollModel "institutku_backend/internals/features/commerce/enrollments/model"
	m "institutku_backend/internals/features/commerce/orders/model"
	userModel "institutku_backend/internals/features/users/user/model"
)

type OrderService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *OrderService {
	return &OrderService{DB: db}
}

func newOrderCode() string {
	// ORD-YYYYMMDD-xxxxxxxx, unik per uniqueIndex di kolom order_code
	return fmt.Sprintf("ORD-%s-%s",
		time.Now().Format("20060102"),
		strings.Split(uuid.New().String(), "-")[0])
}

// CreateOrder: validasi course → order + item + enrollment non-aktif dalam satu
// transaksi, lalu Snap token di luar transaksi (call eksternal tidak boleh
// menahan lock DB).
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, courseIDs []uuid.UUID) (m.OrderModel, error) {
	var order m.OrderModel

	seen := make(map[uuid.UUID]struct{}, len(courseIDs))
	ids := make([]uuid.UUID, 0, len(courseIDs))
	for _, id := range courseIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return order, fiber.NewError(fiber.StatusBadRequest, "At least one course is required")
	}

	idStrs := make([]string, len(ids))
	for i, id := range ids {
		idStrs[i] = id.String()
	}

	var user userModel.UserModel
	if err := s.DB.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return order, fiber.NewError(fiber.StatusUnauthorized, "User not found")
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var courses []courseModel.CourseModel
		if er := tx.
			Where("course_id = ANY(?::uuid[]) AND course_is_active = true", pq.Array(idStrs)).
			Find(&courses).Error; er != nil {
			return er
		}
		if len(courses) != len(ids) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid course IDs provided")
		}

		// enrollment hidup (aktif ATAU masih pending) memblokir pembelian
		// ulang; index unik parsial di course_enrollments menutup race
		// antar dua checkout paralel
		var owned int64
		if er := tx.Model(&enrollModel.CourseEnrollmentModel{}).
			Where("enrollment_user_id = ? AND enrollment_course_id = ANY(?::uuid[])",
				userID, pq.Array(idStrs)).
			Count(&owned).Error; er != nil {
			return er
		}
		if owned > 0 {
			return fiber.NewError(fiber.StatusConflict, "Course already enrolled")
		}

		var total int64
		for _, course := range courses {
			total += course.CoursePrice
		}

		order = m.OrderModel{
			OrderCode:   newOrderCode(),
			OrderUserID: userID,
			OrderAmount: total,
			OrderStatus: m.OrderStatusPending,
		}
		if er := tx.Create(&order).Error; er != nil {
			return er
		}

		for _, course := range courses {
			item := m.OrderItemModel{
				OrderItemOrderID:  order.OrderID,
				OrderItemCourseID: course.CourseID,
				OrderItemPrice:    course.CoursePrice,
			}
			if er := tx.Create(&item).Error; er != nil {
				return er
			}

			etype := enrollModel.EnrollmentLifetime
			if course.CourseDurationDays != nil {
				etype = enrollModel.EnrollmentTimeBound
			}
			enrollment := enrollModel.CourseEnrollmentModel{
				EnrollmentUserID:   userID,
				EnrollmentCourseID: course.CourseID,
				EnrollmentOrderID:  order.OrderID,
				EnrollmentType:     etype,
				EnrollmentIsActive: false,
			}
			if er := tx.Create(&enrollment).Error; er != nil {
				return er
			}
		}
		return nil
	})
	if err != nil {
		return order, err
	}

	// Snap token; kalau gagal, order PENDING tetap ada dan bisa dicoba ulang
	token, redirect, err := GenerateSnapToken(order.OrderCode, order.OrderAmount, user.UserName, user.UserEmail)
	if err != nil {
		log.Printf("[Order.Create] snap token gagal untuk %s: %v", order.OrderCode, err)
		return order, fiber.NewError(fiber.StatusBadGateway, "Failed to create payment transaction")
	}
	if err := s.DB.WithContext(ctx).Model(&order).Updates(map[string]any{
		"order_snap_token":   token,
		"order_redirect_url": redirect,
	}).Error; err != nil {
		return order, err
	}
	order.OrderSnapToken = &token
	order.OrderRedirectURL = &redirect
	return order, nil
}

// HandleStatusWebhook memproses notifikasi Midtrans. Update status order dan
// aktivasi/deaktivasi enrollment terjadi dalam satu transaksi.
func (s *OrderService) HandleStatusWebhook(ctx context.Context, body map[string]any) error {
	orderCode, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[Order.Webhook] payload tidak lengkap:", body)
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order m.OrderModel
		if er := tx.First(&order, "order_code = ?", orderCode).Error; er != nil {
			if er == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Order not found")
			}
			return er
		}

		switch status {
		case "capture", "settlement":
			if order.OrderStatus == m.OrderStatusPaid {
				// notifikasi ulang, tidak perlu apa-apa
				return nil
			}
			now := time.Now()
			if er := tx.Model(&order).Updates(map[string]any{
				"order_status":  m.OrderStatusPaid,
				"order_paid_at": now,
			}).Error; er != nil {
				return er
			}
			return s.activateEnrollments(tx, order.OrderID, now)

		case "expire":
			if er := tx.Model(&order).Update("order_status", m.OrderStatusExpired).Error; er != nil {
				return er
			}
			return s.dropPendingEnrollments(tx, order.OrderID)

		case "cancel", "deny":
			if er := tx.Model(&order).Update("order_status", m.OrderStatusCanceled).Error; er != nil {
				return er
			}
			return s.dropPendingEnrollments(tx, order.OrderID)

		default:
			log.Println("[Order.Webhook] status tidak diproses:", status)
			return nil
		}
	})
}

func (s *OrderService) activateEnrollments(tx *gorm.DB, orderID uuid.UUID, paidAt time.Time) error {
	var enrollments []enrollModel.CourseEnrollmentModel
	if err := tx.Where("enrollment_order_id = ?", orderID).Find(&enrollments).Error; err != nil {
		return err
	}
	for i := range enrollments {
		updates := map[string]any{
			"enrollment_is_active": true,
			"enrollment_starts_at": paidAt,
		}
		if enrollments[i].EnrollmentType == enrollModel.EnrollmentTimeBound {
			var course courseModel.CourseModel
			if err := tx.Select("course_duration_days").
				First(&course, "course_id = ?", enrollments[i].EnrollmentCourseID).Error; err != nil {
				return err
			}
			if course.CourseDurationDays != nil {
				updates["enrollment_expires_at"] = paidAt.AddDate(0, 0, *course.CourseDurationDays)
			}
		}
		if err := tx.Model(&enrollments[i]).Updates(updates).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *OrderService) dropPendingEnrollments(tx *gorm.DB, orderID uuid.UUID) error {
	return tx.
		Where("enrollment_order_id = ? AND enrollment_is_active = false", orderID).
		Delete(&enrollModel.CourseEnrollmentModel{}).Error
}
