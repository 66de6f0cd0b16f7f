package database

import (
	"database/sql"
	"time"
)

// CountActiveStudents returns the number of active students
func CountActiveStudents(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE status = 'active'`).Scan(&count)
	return count, err
}

// CountAttendanceByStatus counts attendance rows for a date and status
func CountAttendanceByStatus(db *sql.DB, date time.Time, status string) (int, error) {
	var count int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`,
		date, status,
	).Scan(&count)
	return count, err
}

// StudentBalance carries one active student's required total and paid sum,
// the inputs for outstanding-fee aggregation
type StudentBalance struct {
	StudentID string
	Required  float64
	Paid      float64
}

// GetStudentBalances returns required and paid totals for every active
// student, with fee types scoped to each student's class
func GetStudentBalances(db *sql.DB) ([]*StudentBalance, error) {
	query := `SELECT s.id,
			  COALESCE((SELECT SUM(ft.amount)
			            FROM fee_types ft
			            WHERE ft.is_mandatory = true
			              AND (ft.class_id IS NULL OR ft.class_id = sec.class_id)), 0) AS required,
			  COALESCE((SELECT SUM(p.amount)
			            FROM payments p
			            WHERE p.student_id = s.id), 0) AS paid
			  FROM students s
			  JOIN sections sec ON s.section_id = sec.id
			  WHERE s.status = 'active'`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := []*StudentBalance{}
	for rows.Next() {
		b := &StudentBalance{}
		if err := rows.Scan(&b.StudentID, &b.Required, &b.Paid); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, rows.Err()
}

// LatestStudent is one row of the dashboard's recent-admissions list
type LatestStudent struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Grade   string  `json:"grade"`
	Section string  `json:"section"`
	Phone   *string `json:"phone"`
}

// GetLatestStudents returns the most recently admitted students
func GetLatestStudents(db *sql.DB, limit int) ([]*LatestStudent, error) {
	query := `SELECT s.id, s.first_name || ' ' || s.last_name AS name,
			  c.name AS grade, sec.name AS section, s.parent_phone
			  FROM students s
			  JOIN sections sec ON s.section_id = sec.id
			  JOIN classes c ON sec.class_id = c.id
			  ORDER BY s.created_at DESC
			  LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*LatestStudent{}
	for rows.Next() {
		s := &LatestStudent{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Grade, &s.Section, &s.Phone); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
