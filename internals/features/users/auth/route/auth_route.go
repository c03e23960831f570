// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"institutku_backend/internals/features/users/auth/controller"
	"institutku_backend/internals/middlewares"
)

// AuthPublicRoutes: endpoint tanpa token, dengan rate limit khusus login/register.
func AuthPublicRoutes(public fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r := public.Group("/auth")
	r.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	r.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	r.Post("/logout", ctl.Logout)
}

// AuthUserRoutes: endpoint yang butuh token valid.
func AuthUserRoutes(user fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	r := user.Group("/auth")
	r.Get("/me", ctl.Me)
}
