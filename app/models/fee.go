package models

import "time"

// FeeType is a named charge category with a default amount. Mandatory fee
// types make up a student's required total. ClassID nil means the fee
// applies to every class.
type FeeType struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Amount      float64  `json:"amount"`
	IsMandatory bool     `json:"is_mandatory"`
	Description *string  `json:"description,omitempty"`
	ClassID     *ClassID `json:"class_id,omitempty"`
}

// Payment is one recorded transfer of money against a fee type
type Payment struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	FeeTypeID     string    `json:"fee_type_id"`
	Amount        float64   `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	PaymentMethod string    `json:"payment_method"`
	ReceiptNumber *string   `json:"receipt_number,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`

	StudentName string `json:"student_name,omitempty"`
	FeeTypeName string `json:"fee_type_name,omitempty"`
}
