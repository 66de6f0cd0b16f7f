package database

import (
	"database/sql"
	"time"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// GetAttendanceByDate returns every attendance record for a date, joined
// with student and class details, in roster order
func GetAttendanceByDate(db *sql.DB, date time.Time) ([]*models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.date, a.status, a.time_in, a.time_out, a.notes,
			  s.first_name || ' ' || s.last_name AS student_name,
			  c.name AS class_name, sec.name AS section_name
			  FROM attendance a
			  JOIN students s ON a.student_id = s.id
			  JOIN sections sec ON s.section_id = sec.id
			  JOIN classes c ON sec.class_id = c.id
			  WHERE a.date = $1
			  ORDER BY c.order_number, sec.name, s.first_name`

	rows, err := db.Query(query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		record := &models.Attendance{}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.Date, &record.Status,
			&record.TimeIn, &record.TimeOut, &record.Notes,
			&record.StudentName, &record.ClassName, &record.SectionName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpsertAttendance inserts a record for (student, date) or updates the
// existing one in place. The unique constraint makes the whole operation a
// single atomic statement.
func UpsertAttendance(db *sql.DB, attendance *models.Attendance) error {
	query := `INSERT INTO attendance (student_id, date, status, time_in, time_out, notes)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  ON CONFLICT (student_id, date)
			  DO UPDATE SET status = EXCLUDED.status, time_in = EXCLUDED.time_in,
			                time_out = EXCLUDED.time_out, notes = EXCLUDED.notes,
			                updated_at = NOW()
			  RETURNING id`

	return db.QueryRow(query,
		attendance.StudentID, attendance.Date, string(attendance.Status),
		attendance.TimeIn, attendance.TimeOut, attendance.Notes,
	).Scan(&attendance.ID)
}

// DeleteAttendance removes one record. Returns sql.ErrNoRows when the id is
// unknown.
func DeleteAttendance(db *sql.DB, attendanceID string) error {
	result, err := db.Exec(`DELETE FROM attendance WHERE id = $1`, attendanceID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetRecentAttendance returns a student's most recent records, newest first
func GetRecentAttendance(db *sql.DB, studentID string, limit int) ([]*models.Attendance, error) {
	query := `SELECT id, student_id, date, status, time_in, time_out, notes
			  FROM attendance
			  WHERE student_id = $1
			  ORDER BY date DESC
			  LIMIT $2`

	rows, err := db.Query(query, studentID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*models.Attendance{}
	for rows.Next() {
		record := &models.Attendance{}
		err := rows.Scan(
			&record.ID, &record.StudentID, &record.Date, &record.Status,
			&record.TimeIn, &record.TimeOut, &record.Notes,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
