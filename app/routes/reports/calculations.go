package reports

import (
	"math"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// DiscountPolicy selects what percentage discounts apply to. The source
// data never pinned this down, so it is a deployment configuration choice.
type DiscountPolicy string

const (
	// PercentOfRequired applies percentages to the required total
	PercentOfRequired DiscountPolicy = "required"
	// PercentOfNet applies percentages to required minus fixed discounts
	PercentOfNet DiscountPolicy = "net"
)

const (
	StatusSettled = "settled"
	StatusOverdue = "overdue"
)

// AttendanceRate returns round(100 * present / total) over the given
// records. An empty window counts as full attendance.
func AttendanceRate(records []*models.Attendance) int {
	if len(records) == 0 {
		return 100
	}

	present := 0
	for _, r := range records {
		if r.Status == models.AttendancePresent {
			present++
		}
	}
	return int(math.Round(float64(present) / float64(len(records)) * 100))
}

// ResolveDiscounts converts a student's discounts to a single value against
// the required total. Fixed amounts apply as-is; percentages apply to the
// base the policy selects.
func ResolveDiscounts(required float64, discounts []*models.Discount, policy DiscountPolicy) float64 {
	var fixed, percent float64
	for _, d := range discounts {
		if d.Amount != nil {
			fixed += *d.Amount
		}
		if d.Percentage != nil {
			percent += *d.Percentage
		}
	}

	base := required
	if policy == PercentOfNet {
		base = required - fixed
		if base < 0 {
			base = 0
		}
	}

	return fixed + base*percent/100
}

// PendingBalance is what the student still owes
func PendingBalance(required, paid, discount float64) float64 {
	return required - paid - discount
}

// FinancialStatus derives the settled/overdue flag. A zero balance counts
// as settled.
func FinancialStatus(pending float64) string {
	if pending <= 0 {
		return StatusSettled
	}
	return StatusOverdue
}
