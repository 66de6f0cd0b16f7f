package attendance

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// AttendanceResponse is one row of the daily attendance table
type AttendanceResponse struct {
	ID        string  `json:"id"`
	StudentID string  `json:"student_id"`
	Name      string  `json:"name"`
	Grade     string  `json:"grade"`
	Section   string  `json:"section"`
	Status    string  `json:"status"`
	TimeIn    *string `json:"time_in"`
	TimeOut   *string `json:"time_out"`
	Notes     *string `json:"notes"`
}

// UpsertAttendanceRequest carries one day's status for one student
type UpsertAttendanceRequest struct {
	StudentID string `json:"student_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	TimeIn    string `json:"time_in"`
	TimeOut   string `json:"time_out"`
	Notes     string `json:"notes"`
}

// GetAttendanceAPI returns all records for a date (today when omitted)
func GetAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": "Invalid date format, expected YYYY-MM-DD",
				"field": "date",
				"value": dateStr,
			})
		}
		date = parsed
	}

	records, err := database.GetAttendanceByDate(db, date)
	if err != nil {
		return unexpectedError(c, "Failed to fetch attendance", err)
	}

	response := make([]AttendanceResponse, 0, len(records))
	for _, r := range records {
		response = append(response, AttendanceResponse{
			ID:        r.ID,
			StudentID: r.StudentID,
			Name:      r.StudentName,
			Grade:     r.ClassName,
			Section:   r.SectionName,
			Status:    string(r.Status),
			TimeIn:    r.TimeIn,
			TimeOut:   r.TimeOut,
			Notes:     r.Notes,
		})
	}
	return c.JSON(response)
}

// UpsertAttendanceAPI records or corrects one student's status for a date.
// A second call for the same (student, date) updates the existing record.
func UpsertAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpsertAttendanceRequest
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
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Required fields are missing",
			"fields": missing,
		})
	}

	status := models.AttendanceStatus(req.Status)
	if !models.ValidAttendanceStatus(status) {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid status, expected present, absent, late or leave",
			"field": "status",
			"value": req.Status,
		})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
			"field": "date",
			"value": req.Date,
		})
	}

	studentExists, err := database.StudentExists(db, req.StudentID)
	if err != nil {
		return unexpectedError(c, "Failed to record attendance", err)
	}
	if !studentExists {
		return c.Status(400).JSON(fiber.Map{
			"error": "Selected student does not exist",
			"field": "student_id",
			"value": req.StudentID,
		})
	}

	record := &models.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    status,
		TimeIn:    optional(req.TimeIn),
		TimeOut:   optional(req.TimeOut),
		Notes:     optional(req.Notes),
	}

	if err := database.UpsertAttendance(db, record); err != nil {
		return unexpectedError(c, "Failed to record attendance", err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      record.ID,
		"message": "Attendance saved successfully",
		"success": true,
	})
}

// DeleteAttendanceAPI removes one attendance record
func DeleteAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	attendanceID := c.Params("id")

	err := database.DeleteAttendance(db, attendanceID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{
			"error":        "Attendance record not found",
			"attendanceId": attendanceID,
		})
	}
	if err != nil {
		return unexpectedError(c, "Failed to delete attendance record", err)
	}

	return c.JSON(fiber.Map{
		"message": "Attendance record deleted successfully",
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
