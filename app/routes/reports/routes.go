package reports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

// SetupReportsRoutes sets up the report API and the printable view
func SetupReportsRoutes(app *fiber.App, db *sql.DB, policy DiscountPolicy) {
	app.Get("/api/reports/student/:id", func(c *fiber.Ctx) error {
		return GetStudentReportAPI(c, db, policy)
	})

	app.Get("/reports/student/:id/print", func(c *fiber.Ctx) error {
		return PrintStudentReportPage(c, db, policy)
	})
}
