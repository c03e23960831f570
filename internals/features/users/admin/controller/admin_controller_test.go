// file: internals/features/users/admin/controller/admin_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	helperAuth "institutku_backend/internals/helpers/auth"
)

// Admin sesi tidak boleh menghapus akunnya sendiri; guard jalan sebelum
// query DB mana pun.
func TestDeleteAdminRejectsSelf(t *testing.T) {
	selfID := uuid.New()
	ctl := NewAdminController(nil)

	app := fiber.New()
	app.Delete("/admins/:adminId", func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocAdmin, helperAuth.AdminGateInfo{
			ID:       selfID,
			Role:     "ADMIN",
			IsActive: true,
		})
		return ctl.DeleteAdmin(c)
	})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/admins/"+selfID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteAdminRejectsMalformedID(t *testing.T) {
	ctl := NewAdminController(nil)

	app := fiber.New()
	app.Delete("/admins/:adminId", ctl.DeleteAdmin)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/admins/not-a-uuid", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
