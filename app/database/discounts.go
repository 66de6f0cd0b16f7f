package database

import (
	"database/sql"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// GetDiscountsByStudent returns one student's discounts, newest first
func GetDiscountsByStudent(db *sql.DB, studentID string) ([]*models.Discount, error) {
	query := `SELECT id, student_id, amount, percentage, reason, academic_year, approved_by, created_at
			  FROM discounts
			  WHERE student_id = $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDiscounts(rows)
}

// GetAllDiscounts returns every discount, newest first
func GetAllDiscounts(db *sql.DB) ([]*models.Discount, error) {
	query := `SELECT id, student_id, amount, percentage, reason, academic_year, approved_by, created_at
			  FROM discounts
			  ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDiscounts(rows)
}

func scanDiscounts(rows *sql.Rows) ([]*models.Discount, error) {
	discounts := []*models.Discount{}
	for rows.Next() {
		d := &models.Discount{}
		err := rows.Scan(
			&d.ID, &d.StudentID, &d.Amount, &d.Percentage,
			&d.Reason, &d.AcademicYear, &d.ApprovedBy, &d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}

// CreateDiscount records a discount
func CreateDiscount(db *sql.DB, discount *models.Discount) error {
	query := `INSERT INTO discounts (student_id, amount, percentage, reason, academic_year, approved_by)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`

	return db.QueryRow(query,
		discount.StudentID, discount.Amount, discount.Percentage,
		discount.Reason, discount.AcademicYear, discount.ApprovedBy,
	).Scan(&discount.ID, &discount.CreatedAt)
}

// DeleteDiscount removes one discount. Returns sql.ErrNoRows when the id is
// unknown.
func DeleteDiscount(db *sql.DB, discountID string) error {
	result, err := db.Exec(`DELETE FROM discounts WHERE id = $1`, discountID)
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
