package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/reports"
)

// SetupDashboardRoutes sets up the dashboard API routes
func SetupDashboardRoutes(app *fiber.App, db *sql.DB, policy reports.DiscountPolicy) {
	api := app.Group("/api/dashboard")

	api.Get("/stats", func(c *fiber.Ctx) error {
		return GetDashboardStatsAPI(c, db, policy)
	})

	api.Get("/latest-students", func(c *fiber.Ctx) error {
		return GetLatestStudentsAPI(c, db)
	})
}
