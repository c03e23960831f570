// middlewares/cors.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"institutku_backend/internals/configs"
)

// CorsMiddleware membuat middleware CORS (origin dari env, kredensial cookie aktif)
func CorsMiddleware() fiber.Handler {
	origin := configs.GetEnv("CORS_ORIGIN", "http://localhost:5173")
	return cors.New(cors.Config{
		AllowOrigins:     origin,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Branch-Id, X-Request-ID",
		AllowCredentials: true,
	})
}
