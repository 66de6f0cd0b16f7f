package reports

import (
	"testing"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

func records(statuses ...models.AttendanceStatus) []*models.Attendance {
	var out []*models.Attendance
	for _, s := range statuses {
		out = append(out, &models.Attendance{Status: s})
	}
	return out
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name    string
		records []*models.Attendance
		want    int
	}{
		{name: "no records counts as full attendance", records: nil, want: 100},
		{name: "all present", records: records(models.AttendancePresent, models.AttendancePresent), want: 100},
		{name: "all absent", records: records(models.AttendanceAbsent, models.AttendanceAbsent), want: 0},
		{
			name:    "three of four present rounds to 75",
			records: records(models.AttendancePresent, models.AttendancePresent, models.AttendanceAbsent, models.AttendancePresent),
			want:    75,
		},
		{
			name:    "late and leave do not count as present",
			records: records(models.AttendancePresent, models.AttendanceLate, models.AttendanceLeave),
			want:    33,
		},
		{
			name:    "two thirds rounds up",
			records: records(models.AttendancePresent, models.AttendancePresent, models.AttendanceAbsent),
			want:    67,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendanceRate(tt.records)
			if got != tt.want {
				t.Errorf("AttendanceRate() = %d, want %d", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("AttendanceRate() = %d, out of [0,100]", got)
			}
		})
	}
}

func fixed(v float64) *models.Discount      { return &models.Discount{Amount: &v} }
func percentage(v float64) *models.Discount { return &models.Discount{Percentage: &v} }

func TestResolveDiscounts(t *testing.T) {
	tests := []struct {
		name      string
		required  float64
		discounts []*models.Discount
		policy    DiscountPolicy
		want      float64
	}{
		{name: "no discounts", required: 1000, policy: PercentOfRequired, want: 0},
		{
			name:      "fixed only",
			required:  1000,
			discounts: []*models.Discount{fixed(100), fixed(50)},
			policy:    PercentOfRequired,
			want:      150,
		},
		{
			name:      "percentage of required",
			required:  1000,
			discounts: []*models.Discount{percentage(10)},
			policy:    PercentOfRequired,
			want:      100,
		},
		{
			name:      "mixed, percentage applies to required",
			required:  1000,
			discounts: []*models.Discount{fixed(200), percentage(10)},
			policy:    PercentOfRequired,
			want:      300,
		},
		{
			name:      "mixed, percentage applies to net of fixed",
			required:  1000,
			discounts: []*models.Discount{fixed(200), percentage(10)},
			policy:    PercentOfNet,
			want:      280,
		},
		{
			name:      "net base never goes negative",
			required:  100,
			discounts: []*models.Discount{fixed(150), percentage(50)},
			policy:    PercentOfNet,
			want:      150,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDiscounts(tt.required, tt.discounts, tt.policy)
			if got != tt.want {
				t.Errorf("ResolveDiscounts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFinancialStatus(t *testing.T) {
	tests := []struct {
		name     string
		required float64
		paid     float64
		discount float64
		pending  float64
		status   string
	}{
		{name: "partially paid is overdue", required: 1000, paid: 400, pending: 600, status: StatusOverdue},
		{name: "fully paid is settled", required: 1000, paid: 1000, pending: 0, status: StatusSettled},
		{name: "zero balance boundary is settled", required: 500, paid: 250, discount: 250, pending: 0, status: StatusSettled},
		{name: "overpaid is settled", required: 1000, paid: 1200, pending: -200, status: StatusSettled},
		{name: "nothing owed and nothing paid is settled", pending: 0, status: StatusSettled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pending := PendingBalance(tt.required, tt.paid, tt.discount)
			if pending != tt.pending {
				t.Errorf("PendingBalance() = %v, want %v", pending, tt.pending)
			}
			if got := FinancialStatus(pending); got != tt.status {
				t.Errorf("FinancialStatus(%v) = %q, want %q", pending, got, tt.status)
			}
		})
	}
}
