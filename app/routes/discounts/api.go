package discounts

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// CreateDiscountRequest carries the discount approval form fields. Exactly
// one of amount or percentage must be set.
type CreateDiscountRequest struct {
	StudentID    string   `json:"student_id"`
	Amount       *float64 `json:"amount"`
	Percentage   *float64 `json:"percentage"`
	Reason       string   `json:"reason"`
	AcademicYear string   `json:"academic_year"`
	ApprovedBy   string   `json:"approved_by"`
}

// GetDiscountsAPI lists discounts, optionally for one student
func GetDiscountsAPI(c *fiber.Ctx, db *sql.DB) error {
	var (
		discounts []*models.Discount
		err       error
	)
	if studentID := c.Query("student_id"); studentID != "" {
		discounts, err = database.GetDiscountsByStudent(db, studentID)
	} else {
		discounts, err = database.GetAllDiscounts(db)
	}
	if err != nil {
		return unexpectedError(c, "Failed to fetch discounts", err)
	}
	return c.JSON(discounts)
}

// CreateDiscountAPI records a discount for a student
func CreateDiscountAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateDiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	var missing []string
	if req.StudentID == "" {
		missing = append(missing, "student_id")
	}
	if req.Reason == "" {
		missing = append(missing, "reason")
	}
	if req.ApprovedBy == "" {
		missing = append(missing, "approved_by")
	}
	if len(missing) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Required fields are missing",
			"fields": missing,
		})
	}

	if (req.Amount == nil) == (req.Percentage == nil) {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Exactly one of amount or percentage is required",
			"details": "Set either a fixed amount or a percentage, not both",
		})
	}
	if req.Amount != nil && *req.Amount <= 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Amount must be positive",
			"field": "amount",
		})
	}
	if req.Percentage != nil && (*req.Percentage <= 0 || *req.Percentage > 100) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Percentage must be between 0 and 100",
			"field": "percentage",
		})
	}

	studentExists, err := database.StudentExists(db, req.StudentID)
	if err != nil {
		return unexpectedError(c, "Failed to add discount", err)
	}
	if !studentExists {
		return c.Status(400).JSON(fiber.Map{
			"error": "Selected student does not exist",
			"field": "student_id",
			"value": req.StudentID,
		})
	}

	discount := &models.Discount{
		StudentID:    req.StudentID,
		Amount:       req.Amount,
		Percentage:   req.Percentage,
		Reason:       req.Reason,
		AcademicYear: optional(req.AcademicYear),
		ApprovedBy:   req.ApprovedBy,
	}

	if err := database.CreateDiscount(db, discount); err != nil {
		return unexpectedError(c, "Failed to add discount", err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      discount.ID,
		"message": "Discount added successfully",
		"success": true,
	})
}

// DeleteDiscountAPI removes one discount
func DeleteDiscountAPI(c *fiber.Ctx, db *sql.DB) error {
	discountID := c.Params("id")

	err := database.DeleteDiscount(db, discountID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{
			"error":      "Discount not found",
			"discountId": discountID,
		})
	}
	if err != nil {
		return unexpectedError(c, "Failed to delete discount", err)
	}

	return c.JSON(fiber.Map{
		"message": "Discount deleted successfully",
		"success": true,
	})
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func unexpectedError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(500).JSON(fiber.Map{
		"error":   message,
		"details": "Unexpected database error",
	})
}
