package discounts

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupDiscountsRoutes sets up the discounts API routes
func SetupDiscountsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/discounts")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetDiscountsAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateDiscountAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteDiscountAPI(c, db)
	})
}
