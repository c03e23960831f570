// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"institutku_backend/internals/configs"
	"institutku_backend/internals/constants"
	authDTO "institutku_backend/internals/features/users/auth/dto"
	authHelper "institutku_backend/internals/features/users/auth/helper"
	userModel "institutku_backend/internals/features/users/user/model"
	helpers "institutku_backend/internals/helpers"
)

func nowUTC() time.Time { return time.Now().UTC() }

/* ==========================
   Token & cookie
========================== */

// SignAccessToken menerbitkan JWT HMAC. extra dipakai untuk claim tambahan
// (mis. admin_id pada sesi admin).
func SignAccessToken(subjectID uuid.UUID, role string, extra map[string]any) (string, error) {
	if strings.TrimSpace(configs.JWTSecret) == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "ACCESS_TOKEN_SECRET belum diset")
	}
	now := nowUTC()
	claims := jwt.MapClaims{
		"id":   subjectID.String(),
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(configs.JWTExpiry).Unix(),
	}
	for k, v := range extra {
		claims[k] = v
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// SetAuthCookie memasang access token sebagai cookie httpOnly.
// Secure/SameSite=None hanya di production (cross-site frontend).
func SetAuthCookie(c *fiber.Ctx, accessToken string) {
	sameSite := "Lax"
	if configs.IsProduction() {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: sameSite,
		Path:     "/",
		Expires:  nowUTC().Add(configs.JWTExpiry),
	})
}

func ClearAuthCookie(c *fiber.Ctx) {
	sameSite := "Lax"
	if configs.IsProduction() {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: sameSite,
		Path:     "/",
		Expires:  nowUTC().Add(-time.Hour),
		MaxAge:   -1,
	})
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validator().Struct(&req); err != nil {
		return helpers.ValidationError(c, err)
	}

	hash, err := authHelper.HashPassword(req.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: hash,
		UserRole:     constants.RoleUser,
		UserIsActive: true,
	}
	if err := db.WithContext(c.Context()).Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helpers.WritePGError(c, err)
	}

	return helpers.JsonCreated(c, "Registration successful", authDTO.FromUserModel(user))
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validator().Struct(&req); err != nil {
		return helpers.ValidationError(c, err)
	}

	var user userModel.UserModel
	err := db.WithContext(c.Context()).
		First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		// pesan sama untuk email tak dikenal dan password salah
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !authHelper.CheckPassword(user.UserPassword, req.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	accessToken, err := SignAccessToken(user.UserID, user.UserRole, nil)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	SetAuthCookie(c, accessToken)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user":         authDTO.FromUserModel(user),
		"access_token": accessToken,
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helpers.Validator().Struct(&req); err != nil {
		return helpers.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = db.WithContext(c.Context()).First(&user, "user_google_id = ?", googleID).Error
	if err == gorm.ErrRecordNotFound {
		user = userModel.UserModel{
			UserName:     name,
			UserEmail:    strings.ToLower(email),
			UserPassword: authHelper.GenerateRandomPassword(),
			UserGoogleID: &googleID,
			UserRole:     constants.RoleUser,
			UserIsActive: true,
		}
		if er := db.WithContext(c.Context()).Create(&user).Error; er != nil {
			low := strings.ToLower(er.Error())
			if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
				return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helpers.WritePGError(c, er)
		}
	} else if err != nil {
		return helpers.WritePGError(c, err)
	}

	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}

	accessToken, err := SignAccessToken(user.UserID, user.UserRole, nil)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}
	SetAuthCookie(c, accessToken)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user":         authDTO.FromUserModel(user),
		"access_token": accessToken,
	})
}

/* ==========================
   LOGOUT
========================== */

// Logout idempotent: clear cookie saja, token stateless kedaluwarsa sendiri.
func Logout(c *fiber.Ctx) error {
	ClearAuthCookie(c)
	return helpers.JsonOK(c, "Logout berhasil", nil)
}
