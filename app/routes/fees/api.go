package fees

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// FeeResponse is one row of the payment history table
type FeeResponse struct {
	ID          string  `json:"id"`
	StudentName string  `json:"studentName"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Method      string  `json:"method"`
}

// CreateFeeRequest carries the payment entry form fields
type CreateFeeRequest struct {
	StudentID     string  `json:"student_id"`
	FeeTypeID     string  `json:"fee_type_id"`
	Amount        float64 `json:"amount"`
	PaymentDate   string  `json:"payment_date"`
	PaymentMethod string  `json:"payment_method"`
	ReceiptNumber string  `json:"receipt_number"`
	Notes         string  `json:"notes"`
}

// GetFeeTypesAPI returns all fee types
func GetFeeTypesAPI(c *fiber.Ctx, db *sql.DB) error {
	feeTypes, err := database.GetAllFeeTypes(db)
	if err != nil {
		log.Printf("Failed to fetch fee types: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch fee types",
			"details": "Unexpected database error",
		})
	}
	return c.JSON(feeTypes)
}

// GetFeesAPI returns the payment history, newest first
func GetFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	payments, err := database.GetAllPayments(db)
	if err != nil {
		log.Printf("Failed to fetch payments: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch payments",
			"details": "Unexpected database error",
		})
	}

	response := make([]FeeResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, FeeResponse{
			ID:          p.ID,
			StudentName: p.StudentName,
			Type:        p.FeeTypeName,
			Amount:      p.Amount,
			Date:        p.PaymentDate.Format("2006-01-02"),
			Method:      p.PaymentMethod,
		})
	}
	return c.JSON(response)
}

// CreateFeeAPI records a payment
func CreateFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateFeeRequest
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
	if req.FeeTypeID == "" {
		missing = append(missing, "fee_type_id")
	}
	if req.Amount == 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Required fields are missing",
			"fields": missing,
		})
	}

	if req.Amount < 0 {
		return c.Status(400).JSON(fiber.Map{
			"error": "Amount must be positive",
			"field": "amount",
		})
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": "Invalid date format, expected YYYY-MM-DD",
				"field": "payment_date",
				"value": req.PaymentDate,
			})
		}
		paymentDate = parsed
	}

	studentExists, err := database.StudentExists(db, req.StudentID)
	if err != nil {
		return unexpectedError(c, "Failed to record payment", err)
	}
	if !studentExists {
		return c.Status(400).JSON(fiber.Map{
			"error": "Selected student does not exist",
			"field": "student_id",
			"value": req.StudentID,
		})
	}

	feeTypeExists, err := database.FeeTypeExists(db, req.FeeTypeID)
	if err != nil {
		return unexpectedError(c, "Failed to record payment", err)
	}
	if !feeTypeExists {
		return c.Status(400).JSON(fiber.Map{
			"error": "Selected fee type does not exist",
			"field": "fee_type_id",
			"value": req.FeeTypeID,
		})
	}

	method := req.PaymentMethod
	if method == "" {
		method = "cash"
	}

	payment := &models.Payment{
		StudentID:     req.StudentID,
		FeeTypeID:     req.FeeTypeID,
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: method,
		ReceiptNumber: optional(req.ReceiptNumber),
		Notes:         optional(req.Notes),
	}

	if err := database.CreatePayment(db, payment); err != nil {
		if isForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"error":   "Referenced student or fee type does not exist",
				"details": "Choose existing entries from the lists",
			})
		}
		return unexpectedError(c, "Failed to record payment", err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      payment.ID,
		"message": "Payment recorded successfully",
		"success": true,
	})
}

// DeleteFeeAPI removes one payment
func DeleteFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	paymentID := c.Params("id")

	err := database.DeletePayment(db, paymentID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{
			"error":     "Payment not found",
			"paymentId": paymentID,
		})
	}
	if err != nil {
		return unexpectedError(c, "Failed to delete payment", err)
	}

	return c.JSON(fiber.Map{
		"message": "Payment deleted successfully",
		"success": true,
	})
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func isForeignKeyViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23503"
}

func unexpectedError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(500).JSON(fiber.Map{
		"error":   message,
		"details": "Unexpected database error",
	})
}
