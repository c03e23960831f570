// file: internals/features/users/admin/dto/admin_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "institutku_backend/internals/features/users/admin/model"
)

type AdminLoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateAdminRequest struct {
	AdminName   string   `json:"admin_name"  validate:"required,min=3,max=100"`
	AdminEmail  string   `json:"admin_email" validate:"required,email,max=120"`
	Password    string   `json:"password"    validate:"required,min=8,max=72"`
	Permissions []string `json:"permissions" validate:"omitempty,dive,required"`
}

func (r *CreateAdminRequest) ToModel(passwordHash string) m.AdminModel {
	perms := r.Permissions
	if perms == nil {
		perms = []string{}
	}
	return m.AdminModel{
		AdminName:        strings.TrimSpace(r.AdminName),
		AdminEmail:       strings.ToLower(strings.TrimSpace(r.AdminEmail)),
		AdminPassword:    passwordHash,
		AdminPermissions: datatypes.NewJSONSlice(perms),
		AdminIsActive:    true,
	}
}

type UpdateAdminRequest struct {
	AdminName     *string   `json:"admin_name"      validate:"omitempty,min=3,max=100"`
	Permissions   *[]string `json:"permissions"     validate:"omitempty,dive,required"`
	AdminIsActive *bool     `json:"admin_is_active" validate:"omitempty"`
}

func (r *UpdateAdminRequest) ApplyTo(updates map[string]any) {
	if r.AdminName != nil {
		updates["admin_name"] = strings.TrimSpace(*r.AdminName)
	}
	if r.Permissions != nil {
		updates["admin_permissions"] = datatypes.NewJSONSlice(*r.Permissions)
	}
	if r.AdminIsActive != nil {
		updates["admin_is_active"] = *r.AdminIsActive
	}
}

type AdminResponse struct {
	AdminID     uuid.UUID `json:"admin_id"`
	AdminName   string    `json:"admin_name"`
	AdminEmail  string    `json:"admin_email"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAdminModel(a m.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:     a.AdminID,
		AdminName:   a.AdminName,
		AdminEmail:  a.AdminEmail,
		Role:        a.AdminRole,
		Permissions: a.AdminPermissions,
		IsActive:    a.AdminIsActive,
		CreatedAt:   a.AdminCreatedAt,
	}
}
