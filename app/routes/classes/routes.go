package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupClassesRoutes sets up classes, sections and academic years API routes
func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	app.Get("/api/classes", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, db)
	})

	app.Get("/api/sections", func(c *fiber.Ctx) error {
		return GetSectionsAPI(c, db)
	})

	app.Get("/api/academic-years", func(c *fiber.Ctx) error {
		return GetAcademicYearsAPI(c, db)
	})
}
