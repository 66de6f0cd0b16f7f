package reports

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
)

// attendanceWindow bounds the recent-attendance history in a report
const attendanceWindow = 30

// AttendanceEntry is one line of the report's attendance history
type AttendanceEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// FeeEntry is one line of the report's payment history
type FeeEntry struct {
	Date   string  `json:"date"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// DiscountEntry is one line of the report's discount list
type DiscountEntry struct {
	Amount       *float64 `json:"amount,omitempty"`
	Percentage   *float64 `json:"percentage,omitempty"`
	Reason       string   `json:"reason"`
	AcademicYear *string  `json:"academic_year,omitempty"`
	ApprovedBy   string   `json:"approved_by"`
}

// StudentReport is the consolidated financial and attendance report
type StudentReport struct {
	Student         *database.StudentSummary      `json:"student"`
	Attendance      []AttendanceEntry             `json:"attendance"`
	AttendanceRate  int                           `json:"attendanceRate"`
	Fees            []FeeEntry                    `json:"fees"`
	FeeBreakdown    []*database.FeeBreakdownEntry `json:"feeBreakdown"`
	TotalFees       float64                       `json:"totalFees"`
	PaidAmount      float64                       `json:"paidAmount"`
	TotalDiscount   float64                       `json:"totalDiscount"`
	PendingFees     float64                       `json:"pendingFees"`
	Discounts       []DiscountEntry               `json:"discounts"`
	FinancialStatus string                        `json:"financialStatus"`
}

// buildStudentReport composes the report from five queries. It is
// all-or-nothing: any failure aborts the whole report. Returns
// sql.ErrNoRows when the student is unknown.
func buildStudentReport(db *sql.DB, studentID string, policy DiscountPolicy) (*StudentReport, error) {
	summary, err := database.GetStudentSummary(db, studentID)
	if err != nil {
		return nil, err
	}

	recent, err := database.GetRecentAttendance(db, studentID, attendanceWindow)
	if err != nil {
		return nil, err
	}
	attendance := make([]AttendanceEntry, 0, len(recent))
	for _, r := range recent {
		attendance = append(attendance, AttendanceEntry{
			Date:   r.Date.Format("2006-01-02"),
			Status: string(r.Status),
		})
	}

	payments, err := database.GetPaymentsByStudent(db, studentID)
	if err != nil {
		return nil, err
	}
	fees := make([]FeeEntry, 0, len(payments))
	var paid float64
	for _, p := range payments {
		paid += p.Amount
		fees = append(fees, FeeEntry{
			Date:   p.PaymentDate.Format("2006-01-02"),
			Type:   p.FeeTypeName,
			Amount: p.Amount,
			Method: p.PaymentMethod,
		})
	}

	// Fee types are scoped through the section's class, never the section
	// itself.
	required, err := database.GetRequiredFeeTotal(db, summary.ClassID)
	if err != nil {
		return nil, err
	}

	breakdown, err := database.GetFeeBreakdown(db, studentID, summary.ClassID)
	if err != nil {
		return nil, err
	}

	discounts, err := database.GetDiscountsByStudent(db, studentID)
	if err != nil {
		return nil, err
	}
	discountEntries := make([]DiscountEntry, 0, len(discounts))
	for _, d := range discounts {
		discountEntries = append(discountEntries, DiscountEntry{
			Amount:       d.Amount,
			Percentage:   d.Percentage,
			Reason:       d.Reason,
			AcademicYear: d.AcademicYear,
			ApprovedBy:   d.ApprovedBy,
		})
	}

	totalDiscount := ResolveDiscounts(required, discounts, policy)
	pending := PendingBalance(required, paid, totalDiscount)

	return &StudentReport{
		Student:         summary,
		Attendance:      attendance,
		AttendanceRate:  AttendanceRate(recent),
		Fees:            fees,
		FeeBreakdown:    breakdown,
		TotalFees:       required,
		PaidAmount:      paid,
		TotalDiscount:   totalDiscount,
		PendingFees:     pending,
		Discounts:       discountEntries,
		FinancialStatus: FinancialStatus(pending),
	}, nil
}

// GetStudentReportAPI returns the consolidated report as JSON
func GetStudentReportAPI(c *fiber.Ctx, db *sql.DB, policy DiscountPolicy) error {
	studentID := c.Params("id")

	report, err := buildStudentReport(db, studentID, policy)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{
			"error":     "Student not found",
			"studentId": studentID,
		})
	}
	if err != nil {
		log.Printf("Failed to build student report: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to build student report",
			"details": "Unexpected database error",
		})
	}

	return c.JSON(report)
}

// PrintStudentReportPage renders the printable report view
func PrintStudentReportPage(c *fiber.Ctx, db *sql.DB, policy DiscountPolicy) error {
	studentID := c.Params("id")

	report, err := buildStudentReport(db, studentID, policy)
	if err == sql.ErrNoRows {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if err != nil {
		log.Printf("Failed to build student report: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build student report")
	}

	return c.Render("reports/print", fiber.Map{
		"Title":  "Student Report - " + report.Student.Name,
		"Report": report,
	})
}
