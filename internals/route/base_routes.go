// file: internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startedAt = time.Now()

// BaseRoutes: endpoint kesehatan di bawah /api/v1.
func BaseRoutes(api fiber.Router, db *gorm.DB) {
	api.Get("/healthz", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"uptime":   time.Since(startedAt).String(),
			"database": dbStatus,
		})
	})
}
