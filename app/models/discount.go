package models

import "time"

// Discount reduces a student's required total. Exactly one of Amount or
// Percentage is set; percentage resolution against the required total is a
// configuration choice (see reports package).
type Discount struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	Amount       *float64  `json:"amount,omitempty"`
	Percentage   *float64  `json:"percentage,omitempty"`
	Reason       string    `json:"reason"`
	AcademicYear *string   `json:"academic_year,omitempty"`
	ApprovedBy   string    `json:"approved_by"`
	CreatedAt    time.Time `json:"created_at"`
}
