package classes

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
)

// GetClassesAPI returns all classes in display order
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := database.GetAllClasses(db)
	if err != nil {
		log.Printf("Failed to fetch classes: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch classes",
			"details": "Unexpected database error",
		})
	}
	return c.JSON(classes)
}

// GetSectionsAPI returns sections grouped per class for dropdowns
func GetSectionsAPI(c *fiber.Ctx, db *sql.DB) error {
	groups, err := database.GetSectionsGroupedByClass(db)
	if err != nil {
		log.Printf("Failed to fetch sections: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch sections",
			"details": "Unexpected database error",
		})
	}
	return c.JSON(groups)
}

// GetAcademicYearsAPI returns all academic years
func GetAcademicYearsAPI(c *fiber.Ctx, db *sql.DB) error {
	years, err := database.GetAllAcademicYears(db)
	if err != nil {
		log.Printf("Failed to fetch academic years: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch academic years",
			"details": "Unexpected database error",
		})
	}
	return c.JSON(years)
}
