// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	userModel "institutku_backend/internals/features/users/user/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email,max=120"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUserModel(u userModel.UserModel) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		UserName:  u.UserName,
		Email:     u.UserEmail,
		Role:      u.UserRole,
		IsActive:  u.UserIsActive,
		CreatedAt: u.UserCreatedAt,
	}
}
