package models

import "time"

// AcademicYear identifies a school year (e.g. "2025/2026")
type AcademicYear struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsCurrent bool       `json:"is_current"`
}
