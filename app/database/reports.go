package database

import (
	"database/sql"
	"time"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// StudentSummary is the identity block at the top of a student report
type StudentSummary struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Grade        string         `json:"grade"`
	Section      string         `json:"section"`
	GradeSection string         `json:"gradeSection"`
	Phone        *string        `json:"phone,omitempty"`
	Email        *string        `json:"email,omitempty"`
	CreatedAt    string         `json:"createdAt"`
	ClassID      models.ClassID `json:"-"`
}

// GetStudentSummary loads the identity block for one student. Returns
// sql.ErrNoRows when the student does not exist.
func GetStudentSummary(db *sql.DB, studentID string) (*StudentSummary, error) {
	query := `SELECT s.id, s.first_name || ' ' || s.last_name AS name,
			  c.name AS grade, sec.name AS section,
			  s.parent_phone, s.parent_email, s.admission_date,
			  sec.class_id
			  FROM students s
			  JOIN sections sec ON s.section_id = sec.id
			  JOIN classes c ON sec.class_id = c.id
			  WHERE s.id = $1`

	summary := &StudentSummary{}
	var admissionDate time.Time
	err := db.QueryRow(query, studentID).Scan(
		&summary.ID, &summary.Name, &summary.Grade, &summary.Section,
		&summary.Phone, &summary.Email, &admissionDate,
		&summary.ClassID,
	)
	if err != nil {
		return nil, err
	}
	summary.CreatedAt = admissionDate.Format("2006-01-02")
	summary.GradeSection = summary.Grade + " - " + summary.Section
	return summary, nil
}
