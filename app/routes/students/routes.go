package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentsRoutes sets up the students API routes
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")

	api.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})

	// Reduced projections for form dropdowns
	api.Get("/for-fees", func(c *fiber.Ctx) error {
		return GetStudentsForFeesAPI(c, db)
	})

	api.Get("/for-attendance", func(c *fiber.Ctx) error {
		return GetStudentsForAttendanceAPI(c, db)
	})

	api.Get("/for-report", func(c *fiber.Ctx) error {
		return GetStudentsForReportAPI(c, db)
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db)
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db)
	})
}
