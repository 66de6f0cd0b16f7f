package database

import (
	"database/sql"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// GetAllAcademicYears returns years newest first
func GetAllAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `SELECT id, name, start_date, end_date, is_current
			  FROM academic_years
			  ORDER BY name DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := []*models.AcademicYear{}
	for rows.Next() {
		year := &models.AcademicYear{}
		if err := rows.Scan(&year.ID, &year.Name, &year.StartDate, &year.EndDate, &year.IsCurrent); err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

// AcademicYearExists reports whether an academic year row exists
func AcademicYearExists(db *sql.DB, yearID string) (bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM academic_years WHERE id = $1`, yearID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
