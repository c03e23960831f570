// file: internals/middlewares/auth/jwt_auth_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "institutku_backend/internals/helpers/auth"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func testApp(allowCookie bool) (*fiber.App, *map[string]any) {
	app := fiber.New()
	captured := map[string]any{}
	app.Get("/p", AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: allowCookie}), func(c *fiber.Ctx) error {
		captured["user_id"] = c.Locals(helperAuth.LocUserID)
		captured["role"] = c.Locals(helperAuth.LocRole)
		captured["admin_id"] = c.Locals(helperAuth.LocAdminID)
		return c.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func TestAuthJWTMissingToken(t *testing.T) {
	app, _ := testApp(false)
	resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthJWTInvalidToken(t *testing.T) {
	app, _ := testApp(false)
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthJWTExpiredToken(t *testing.T) {
	app, _ := testApp(false)
	token := signTestToken(t, jwt.MapClaims{
		"id":   "2b1f9cf2-6a53-4b59-8a0f-111111111111",
		"role": "USER",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthJWTBearerHydratesLocals(t *testing.T) {
	app, captured := testApp(false)
	token := signTestToken(t, jwt.MapClaims{
		"id":   "2b1f9cf2-6a53-4b59-8a0f-222222222222",
		"role": "user",
	})
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if (*captured)["user_id"] != "2b1f9cf2-6a53-4b59-8a0f-222222222222" {
		t.Fatalf("user_id = %v", (*captured)["user_id"])
	}
	// role dinormalisasi ke uppercase
	if (*captured)["role"] != "USER" {
		t.Fatalf("role = %v, want USER", (*captured)["role"])
	}
	// bukan admin → admin_id tidak boleh terpasang
	if (*captured)["admin_id"] != nil {
		t.Fatalf("admin_id must be nil for USER, got %v", (*captured)["admin_id"])
	}
}

func TestAuthJWTAdminClaim(t *testing.T) {
	app, captured := testApp(false)
	token := signTestToken(t, jwt.MapClaims{
		"id":   "2b1f9cf2-6a53-4b59-8a0f-333333333333",
		"role": "ADMIN",
	})
	req := httptest.NewRequest("GET", "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if (*captured)["admin_id"] != "2b1f9cf2-6a53-4b59-8a0f-333333333333" {
		t.Fatalf("admin_id = %v", (*captured)["admin_id"])
	}
}

func TestAuthJWTCookieFallback(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{
		"id":   "2b1f9cf2-6a53-4b59-8a0f-444444444444",
		"role": "USER",
	})

	// fallback dimatikan → cookie diabaikan
	app, _ := testApp(false)
	req := httptest.NewRequest("GET", "/p", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("cookie without fallback: status = %d, want 401", resp.StatusCode)
	}

	// fallback aktif → cookie diterima
	app, captured := testApp(true)
	req = httptest.NewRequest("GET", "/p", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("cookie with fallback: status = %d, want 200", resp.StatusCode)
	}
	if (*captured)["user_id"] != "2b1f9cf2-6a53-4b59-8a0f-444444444444" {
		t.Fatalf("user_id = %v", (*captured)["user_id"])
	}
}
