// file: internals/helpers/auth/token.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci locals yang dihydrate oleh middleware AuthJWT / AdminAuth.
const (
	LocUserID      = "user_id"
	LocRole        = "role"
	LocAdminID     = "admin_id"
	LocAdmin       = "admin"       // identitas admin tersanitasi (AdminGateInfo)
	LocBranchID    = "branch_id"   // dari BranchContext
	LocBranchBatch = "branch_batch_ids"
)

// AdminGateInfo adalah identitas admin tersanitasi yang dipasang AdminAuth
// untuk handler downstream (id, role, permissions, is_active saja).
type AdminGateInfo struct {
	ID          uuid.UUID `json:"id"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"is_active"`
}

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing identity")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid identity")
	}
	return id, nil
}

// GetUserID mengambil user_id dari token yang sudah diverifikasi.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

// GetAdminID mengambil admin_id dari token yang sudah diverifikasi.
// Tidak pernah membaca body request (identitas aktor wajib dari sesi).
func GetAdminID(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocAdminID)
}

func GetRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return s
	}
	return ""
}

// GetAdminGate mengambil identitas admin tersanitasi hasil AdminAuth.
func GetAdminGate(c *fiber.Ctx) (AdminGateInfo, bool) {
	info, ok := c.Locals(LocAdmin).(AdminGateInfo)
	return info, ok
}

// GetBranchID mengambil cabang yang dihydrate BranchContext (X-Branch-Id).
func GetBranchID(c *fiber.Ctx) (uuid.UUID, bool) {
	s, ok := c.Locals(LocBranchID).(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// GetBranchBatchIDs mengambil daftar batch milik cabang konteks.
func GetBranchBatchIDs(c *fiber.Ctx) ([]uuid.UUID, bool) {
	ids, ok := c.Locals(LocBranchBatch).([]uuid.UUID)
	return ids, ok
}
