package database

import (
	"database/sql"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// GetAllStudents returns every student with class and section names, newest
// first
func GetAllStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT s.id, s.first_name, s.last_name, s.gender, s.birth_date,
			  s.address, s.parent_phone, s.parent_email, s.admission_date,
			  s.section_id, s.status, s.created_at,
			  sec.name AS section_name, c.name AS class_name
			  FROM students s
			  JOIN sections sec ON s.section_id = sec.id
			  JOIN classes c ON sec.class_id = c.id
			  ORDER BY s.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &student.Gender,
			&student.BirthDate, &student.Address, &student.ParentPhone,
			&student.ParentEmail, &student.AdmissionDate, &student.SectionID,
			&student.Status, &student.CreatedAt,
			&student.SectionName, &student.ClassName,
		)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if students == nil {
		students = []*models.Student{}
	}
	return students, rows.Err()
}

// StudentListing is the reduced projection used by form dropdowns
type StudentListing struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Grade   string `json:"grade,omitempty"`
	Section string `json:"section,omitempty"`
}

// GetStudentsForForms returns active students as id/name pairs, newest first
func GetStudentsForForms(db *sql.DB) ([]*StudentListing, error) {
	query := `SELECT s.id, s.first_name || ' ' || s.last_name AS name
			  FROM students s
			  WHERE s.status = 'active'
			  ORDER BY s.created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []*StudentListing{}
	for rows.Next() {
		l := &StudentListing{}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetStudentsForAttendance returns active students with grade and section,
// in roster order
func GetStudentsForAttendance(db *sql.DB) ([]*StudentListing, error) {
	query := `SELECT s.id, s.first_name || ' ' || s.last_name AS name,
			  c.name AS grade, sec.name AS section
			  FROM students s
			  JOIN sections sec ON s.section_id = sec.id
			  JOIN classes c ON sec.class_id = c.id
			  WHERE s.status = 'active'
			  ORDER BY c.order_number, sec.name, s.first_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := []*StudentListing{}
	for rows.Next() {
		l := &StudentListing{}
		if err := rows.Scan(&l.ID, &l.Name, &l.Grade, &l.Section); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// StudentExists reports whether a student row exists
func StudentExists(db *sql.DB, studentID string) (bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM students WHERE id = $1`, studentID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SectionExists reports whether a section row exists
func SectionExists(db *sql.DB, sectionID models.SectionID) (bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM sections WHERE id = $1`, string(sectionID)).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DuplicateStudentExists checks the (first_name, last_name, section) natural
// key before an insert
func DuplicateStudentExists(db *sql.DB, firstName, lastName string, sectionID models.SectionID) (bool, error) {
	var id string
	err := db.QueryRow(
		`SELECT id FROM students WHERE first_name = $1 AND last_name = $2 AND section_id = $3`,
		firstName, lastName, string(sectionID),
	).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateStudent inserts a student inside a transaction
func CreateStudent(db *sql.DB, student *models.Student) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO students (
				id, first_name, last_name, gender, birth_date, nationality, religion,
				address, emergency_contact, medical_conditions, blood_type,
				parent_guardian_name, parent_guardian_relation, parent_phone,
				parent_email, parent_occupation, parent_work_address,
				admission_date, section_id, academic_year_id
			  ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	_, err = tx.Exec(query,
		student.ID, student.FirstName, student.LastName, student.Gender,
		student.BirthDate, student.Nationality, student.Religion,
		student.Address, student.EmergencyContact, student.MedicalConditions,
		student.BloodType, student.ParentGuardianName, student.ParentGuardianRelation,
		student.ParentPhone, student.ParentEmail, student.ParentOccupation,
		student.ParentWorkAddress, student.AdmissionDate, string(student.SectionID),
		student.AcademicYearID,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteStudent removes a student and every dependent row in one
// transaction. If any statement fails nothing is deleted.
func DeleteStudent(db *sql.DB, studentID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	dependents := []string{
		`DELETE FROM attendance WHERE student_id = $1`,
		`DELETE FROM payments WHERE student_id = $1`,
		`DELETE FROM academic_results WHERE student_id = $1`,
		`DELETE FROM notes WHERE student_id = $1`,
		`DELETE FROM parent_student_relations WHERE student_id = $1`,
		`DELETE FROM discounts WHERE student_id = $1`,
	}
	for _, stmt := range dependents {
		if _, err := tx.Exec(stmt, studentID); err != nil {
			return err
		}
	}

	result, err := tx.Exec(`DELETE FROM students WHERE id = $1`, studentID)
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

	return tx.Commit()
}
