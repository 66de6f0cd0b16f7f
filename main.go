package main

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/config"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/attendance"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/classes"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/dashboard"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/discounts"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/fees"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/reports"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/students"
)

// customErrorHandler returns JSON for API paths and a rendered error page
// for web requests
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"code":    code,
		})
	}

	return c.Status(code).Render("error", fiber.Map{
		"Title":        "Error - School Management",
		"ErrorCode":    code,
		"ErrorMessage": err.Error(),
	})
}

func main() {
	// Load config and connect the database pool
	config.Init()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Template engine for the printable report views
	engine := html.New("./app/templates", ".html")

	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.CORSOrigin,
		AllowMethods: "GET,POST,PUT,DELETE",
	}))

	// API index
	app.Get("/api", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API is running",
			"endpoints": fiber.Map{
				"dashboard":      "/api/dashboard/stats",
				"latestStudents": "/api/dashboard/latest-students",
				"students":       "/api/students",
				"studentsForForms": fiber.Map{
					"fees":       "/api/students/for-fees",
					"attendance": "/api/students/for-attendance",
					"reports":    "/api/students/for-report",
				},
				"classes":       "/api/classes",
				"sections":      "/api/sections",
				"academicYears": "/api/academic-years",
				"feeTypes":      "/api/fee-types",
				"fees":          "/api/fees",
				"attendance":    "/api/attendance",
				"discounts":     "/api/discounts",
				"reports":       "/api/reports/student/:id",
			},
		})
	})

	policy := reports.DiscountPolicy(config.AppConfig.DiscountPercentBase)

	// Routes
	students.SetupStudentsRoutes(app, db)
	classes.SetupClassesRoutes(app, db)
	fees.SetupFeesRoutes(app, db)
	attendance.SetupAttendanceRoutes(app, db)
	discounts.SetupDiscountsRoutes(app, db)
	reports.SetupReportsRoutes(app, db, policy)
	dashboard.SetupDashboardRoutes(app, db, policy)

	// Catch-all must stay last
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	addr := ":" + config.AppConfig.Port
	log.Println("Server starting on", addr)
	log.Fatal(app.Listen(addr))
}
