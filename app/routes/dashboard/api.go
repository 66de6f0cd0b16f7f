package dashboard

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/routes/reports"
)

// StatsResponse is the dashboard's headline numbers
type StatsResponse struct {
	TotalStudents   int     `json:"totalStudents"`
	AttendanceToday int     `json:"attendanceToday"`
	AbsentToday     int     `json:"absentToday"`
	FeesDue         float64 `json:"feesDue"`
}

// GetDashboardStatsAPI aggregates the headline numbers
func GetDashboardStatsAPI(c *fiber.Ctx, db *sql.DB, policy reports.DiscountPolicy) error {
	totalStudents, err := database.CountActiveStudents(db)
	if err != nil {
		return unexpectedError(c, "Failed to fetch dashboard statistics", err)
	}

	today := time.Now()
	presentToday, err := database.CountAttendanceByStatus(db, today, string(models.AttendancePresent))
	if err != nil {
		return unexpectedError(c, "Failed to fetch dashboard statistics", err)
	}
	absentToday, err := database.CountAttendanceByStatus(db, today, string(models.AttendanceAbsent))
	if err != nil {
		return unexpectedError(c, "Failed to fetch dashboard statistics", err)
	}

	feesDue, err := outstandingFees(db, policy)
	if err != nil {
		return unexpectedError(c, "Failed to fetch dashboard statistics", err)
	}

	return c.JSON(StatsResponse{
		TotalStudents:   totalStudents,
		AttendanceToday: presentToday,
		AbsentToday:     absentToday,
		FeesDue:         feesDue,
	})
}

// outstandingFees sums every active student's pending balance using the
// same per-student discount resolution the report applies
func outstandingFees(db *sql.DB, policy reports.DiscountPolicy) (float64, error) {
	balances, err := database.GetStudentBalances(db)
	if err != nil {
		return 0, err
	}

	allDiscounts, err := database.GetAllDiscounts(db)
	if err != nil {
		return 0, err
	}
	byStudent := make(map[string][]*models.Discount)
	for _, d := range allDiscounts {
		byStudent[d.StudentID] = append(byStudent[d.StudentID], d)
	}

	var due float64
	for _, b := range balances {
		discount := reports.ResolveDiscounts(b.Required, byStudent[b.StudentID], policy)
		pending := reports.PendingBalance(b.Required, b.Paid, discount)
		if pending > 0 {
			due += pending
		}
	}
	return due, nil
}

// GetLatestStudentsAPI returns the five most recent admissions
func GetLatestStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetLatestStudents(db, 5)
	if err != nil {
		return unexpectedError(c, "Failed to fetch latest students", err)
	}
	return c.JSON(students)
}

func unexpectedError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(500).JSON(fiber.Map{
		"error":   message,
		"details": "Unexpected database error",
	})
}
