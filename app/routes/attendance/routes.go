package attendance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupAttendanceRoutes sets up the attendance API routes
func SetupAttendanceRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/attendance")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetAttendanceAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return UpsertAttendanceAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteAttendanceAPI(c, db)
	})
}
