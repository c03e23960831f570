// file: internals/features/users/admin/model/admin_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminModel struct {
	AdminID uuid.UUID `gorm:"column:admin_id;type:uuid;default:gen_random_uuid();primaryKey" json:"admin_id"`

	AdminName     string `gorm:"column:admin_name;type:varchar(100);not null" json:"admin_name"`
	AdminEmail    string `gorm:"column:admin_email;type:varchar(120);not null;uniqueIndex" json:"admin_email"`
	AdminPassword string `gorm:"column:admin_password;type:varchar(100);not null" json:"-"`

	AdminRole        string                       `gorm:"column:admin_role;type:varchar(20);not null;default:'ADMIN'" json:"admin_role"`
	AdminPermissions datatypes.JSONSlice[string]  `gorm:"column:admin_permissions;type:jsonb;not null;default:'[]'" json:"admin_permissions"`
	AdminIsActive    bool                         `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`

	AdminCreatedAt time.Time      `gorm:"column:admin_created_at;type:timestamptz;not null;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time      `gorm:"column:admin_updated_at;type:timestamptz;not null;autoUpdateTime" json:"admin_updated_at"`
	AdminDeletedAt gorm.DeletedAt `gorm:"column:admin_deleted_at;index" json:"-"`
}

func (AdminModel) TableName() string { return "admins" }

// HasAnyPermission: cukup salah satu permission yang diminta.
func (m *AdminModel) HasAnyPermission(required []string) bool {
	if len(required) == 0 {
		return true
	}
	owned := make(map[string]struct{}, len(m.AdminPermissions))
	for _, p := range m.AdminPermissions {
		owned[p] = struct{}{}
	}
	for _, r := range required {
		if _, ok := owned[r]; ok {
			return true
		}
	}
	return false
}
