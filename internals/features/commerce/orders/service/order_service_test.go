// file: internals/features/commerce/orders/service/order_service_test.go
package service

import (
	"context"
	"os"
	"regexp"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "institutku_backend/internals/features/commerce/courses/model"
	enrollModel "institutku_backend/internals/features/commerce/enrollments/model"
	m "institutku_backend/internals/features/commerce/orders/model"
	userModel "institutku_backend/internals/features/users/user/model"
)

var orderCodeRe = regexp.MustCompile(`^ORD-\d{8}-[0-9a-f]{8}$`)

func TestNewOrderCodeFormat(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		code := newOrderCode()
		if !orderCodeRe.MatchString(code) {
			t.Fatalf("order code %q does not match expected format", code)
		}
		if _, dup := seen[code]; dup {
			t.Fatalf("duplicate order code generated: %s", code)
		}
		seen[code] = struct{}{}
	}
}

/* =========================
   Integration (butuh Postgres)
========================= */

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("INTEGRATION_TESTS") != "1" {
		t.Skip("set INTEGRATION_TESTS=1 to run DB-backed tests")
	}
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&m.OrderModel{},
		&m.OrderItemModel{},
		&enrollModel.CourseEnrollmentModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUserAndCourse(t *testing.T, db *gorm.DB) (userModel.UserModel, courseModel.CourseModel) {
	t.Helper()
	user := userModel.UserModel{
		UserName:     "Pembeli",
		UserEmail:    uuid.New().String() + "@test.local",
		UserPassword: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	course := courseModel.CourseModel{CourseTitle: "Kalkulus Dasar", CoursePrice: 150000}
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	return user, course
}

// Index unik parsial: maksimal satu enrollment hidup per (user, course);
// baris yang sudah soft-delete tidak ikut menghalangi.
func TestEnrollmentUniquePerAliveRowIntegration(t *testing.T) {
	db := testDB(t)
	user, course := seedUserAndCourse(t, db)

	order := m.OrderModel{OrderCode: newOrderCode(), OrderUserID: user.UserID, OrderStatus: m.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	first := enrollModel.CourseEnrollmentModel{
		EnrollmentUserID:   user.UserID,
		EnrollmentCourseID: course.CourseID,
		EnrollmentOrderID:  order.OrderID,
		EnrollmentType:     enrollModel.EnrollmentLifetime,
	}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("first enrollment: %v", err)
	}

	dup := enrollModel.CourseEnrollmentModel{
		EnrollmentUserID:   user.UserID,
		EnrollmentCourseID: course.CourseID,
		EnrollmentOrderID:  order.OrderID,
		EnrollmentType:     enrollModel.EnrollmentLifetime,
	}
	if err := db.Create(&dup).Error; err == nil {
		t.Fatalf("second alive enrollment for same (user, course) must be rejected")
	}

	// setelah baris pertama dihapus (soft), insert baru boleh lagi
	if err := db.Delete(&first).Error; err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := db.Create(&dup).Error; err != nil {
		t.Fatalf("re-insert after soft delete: %v", err)
	}
}

// Order pending kedua untuk course yang sama harus ditolak 409 sebelum
// menyentuh gateway pembayaran.
func TestCreateOrderRejectsPendingDuplicateIntegration(t *testing.T) {
	db := testDB(t)
	svc := New(db)
	ctx := context.Background()

	user, course := seedUserAndCourse(t, db)

	order := m.OrderModel{OrderCode: newOrderCode(), OrderUserID: user.UserID, OrderStatus: m.OrderStatusPending}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	pending := enrollModel.CourseEnrollmentModel{
		EnrollmentUserID:   user.UserID,
		EnrollmentCourseID: course.CourseID,
		EnrollmentOrderID:  order.OrderID,
		EnrollmentType:     enrollModel.EnrollmentLifetime,
		EnrollmentIsActive: false,
	}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed pending enrollment: %v", err)
	}

	_, err := svc.CreateOrder(ctx, user.UserID, []uuid.UUID{course.CourseID})
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("expected 409 conflict, got %v", err)
	}
}
