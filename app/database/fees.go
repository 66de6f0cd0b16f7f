package database

import (
	"database/sql"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// GetAllFeeTypes returns fee types ordered by name
func GetAllFeeTypes(db *sql.DB) ([]*models.FeeType, error) {
	query := `SELECT id, name, amount, is_mandatory, description, class_id
			  FROM fee_types
			  ORDER BY name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feeTypes := []*models.FeeType{}
	for rows.Next() {
		ft := &models.FeeType{}
		err := rows.Scan(&ft.ID, &ft.Name, &ft.Amount, &ft.IsMandatory, &ft.Description, &ft.ClassID)
		if err != nil {
			return nil, err
		}
		feeTypes = append(feeTypes, ft)
	}
	return feeTypes, rows.Err()
}

// FeeTypeExists reports whether a fee type row exists
func FeeTypeExists(db *sql.DB, feeTypeID string) (bool, error) {
	var id string
	err := db.QueryRow(`SELECT id FROM fee_types WHERE id = $1`, feeTypeID).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetAllPayments returns the payment history joined with student and fee
// type names, newest first
func GetAllPayments(db *sql.DB) ([]*models.Payment, error) {
	query := `SELECT p.id, p.student_id, p.fee_type_id, p.amount, p.payment_date,
			  p.payment_method, p.receipt_number, p.notes, p.created_at,
			  s.first_name || ' ' || s.last_name AS student_name,
			  ft.name AS fee_type_name
			  FROM payments p
			  JOIN students s ON p.student_id = s.id
			  JOIN fee_types ft ON p.fee_type_id = ft.id
			  ORDER BY p.payment_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.FeeTypeID, &p.Amount, &p.PaymentDate,
			&p.PaymentMethod, &p.ReceiptNumber, &p.Notes, &p.CreatedAt,
			&p.StudentName, &p.FeeTypeName,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// GetPaymentsByStudent returns one student's payments, newest first
func GetPaymentsByStudent(db *sql.DB, studentID string) ([]*models.Payment, error) {
	query := `SELECT p.id, p.student_id, p.fee_type_id, p.amount, p.payment_date,
			  p.payment_method, p.receipt_number, p.notes, p.created_at,
			  ft.name AS fee_type_name
			  FROM payments p
			  JOIN fee_types ft ON p.fee_type_id = ft.id
			  WHERE p.student_id = $1
			  ORDER BY p.payment_date DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		p := &models.Payment{}
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.FeeTypeID, &p.Amount, &p.PaymentDate,
			&p.PaymentMethod, &p.ReceiptNumber, &p.Notes, &p.CreatedAt,
			&p.FeeTypeName,
		)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// CreatePayment records a payment inside a transaction
func CreatePayment(db *sql.DB, payment *models.Payment) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `INSERT INTO payments (
				student_id, fee_type_id, amount, payment_date, payment_method, receipt_number, notes
			  ) VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, created_at`

	err = tx.QueryRow(query,
		payment.StudentID, payment.FeeTypeID, payment.Amount,
		payment.PaymentDate, payment.PaymentMethod,
		payment.ReceiptNumber, payment.Notes,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// DeletePayment removes one payment. Returns sql.ErrNoRows when the id is
// unknown.
func DeletePayment(db *sql.DB, paymentID string) error {
	result, err := db.Exec(`DELETE FROM payments WHERE id = $1`, paymentID)
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

// GetRequiredFeeTotal sums mandatory fee type amounts that apply to a class.
// Fee types with no class scope apply to everyone.
func GetRequiredFeeTotal(db *sql.DB, classID models.ClassID) (float64, error) {
	var total float64
	err := db.QueryRow(
		`SELECT COALESCE(SUM(amount), 0)
		 FROM fee_types
		 WHERE is_mandatory = true AND (class_id IS NULL OR class_id = $1)`,
		string(classID),
	).Scan(&total)
	return total, err
}

// FeeBreakdownEntry is one mandatory fee type with how much of it a student
// has paid
type FeeBreakdownEntry struct {
	FeeTypeID string  `json:"fee_type_id"`
	Name      string  `json:"name"`
	Required  float64 `json:"required"`
	Paid      float64 `json:"paid"`
	Balance   float64 `json:"balance"`
}

// GetFeeBreakdown returns the per-fee-type required/paid amounts for a
// student within their class scope
func GetFeeBreakdown(db *sql.DB, studentID string, classID models.ClassID) ([]*FeeBreakdownEntry, error) {
	query := `SELECT ft.id, ft.name, ft.amount, COALESCE(SUM(p.amount), 0) AS paid
			  FROM fee_types ft
			  LEFT JOIN payments p ON p.fee_type_id = ft.id AND p.student_id = $1
			  WHERE ft.is_mandatory = true AND (ft.class_id IS NULL OR ft.class_id = $2)
			  GROUP BY ft.id, ft.name, ft.amount
			  ORDER BY ft.name`

	rows, err := db.Query(query, studentID, string(classID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	breakdown := []*FeeBreakdownEntry{}
	for rows.Next() {
		entry := &FeeBreakdownEntry{}
		if err := rows.Scan(&entry.FeeTypeID, &entry.Name, &entry.Required, &entry.Paid); err != nil {
			return nil, err
		}
		entry.Balance = entry.Required - entry.Paid
		breakdown = append(breakdown, entry)
	}
	return breakdown, rows.Err()
}
