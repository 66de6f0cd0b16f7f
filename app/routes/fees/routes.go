package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the fee types and payments API routes
func SetupFeesRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/fee-types", func(c *fiber.Ctx) error {
		return GetFeeTypesAPI(c, db)
	})

	api := app.Group("/api/fees")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetFeesAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateFeeAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteFeeAPI(c, db)
	})
}
