package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates missing tables and constraints. Every statement is
// idempotent so the app can run this at startup on any schema version.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			level TEXT,
			order_number INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS sections (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			class_id UUID NOT NULL REFERENCES classes(id),
			UNIQUE (class_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			start_date DATE,
			end_date DATE,
			is_current BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender TEXT,
			birth_date DATE,
			nationality TEXT,
			religion TEXT,
			address TEXT,
			emergency_contact TEXT,
			medical_conditions TEXT,
			blood_type TEXT,
			parent_guardian_name TEXT,
			parent_guardian_relation TEXT,
			parent_phone TEXT,
			parent_email TEXT,
			parent_occupation TEXT,
			parent_work_address TEXT,
			admission_date DATE NOT NULL DEFAULT CURRENT_DATE,
			section_id UUID NOT NULL REFERENCES sections(id),
			academic_year_id UUID REFERENCES academic_years(id),
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_types (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			amount NUMERIC(12,2) NOT NULL,
			is_mandatory BOOLEAN NOT NULL DEFAULT true,
			description TEXT,
			class_id UUID REFERENCES classes(id)
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id TEXT NOT NULL REFERENCES students(id),
			fee_type_id UUID NOT NULL REFERENCES fee_types(id),
			amount NUMERIC(12,2) NOT NULL,
			payment_date DATE NOT NULL DEFAULT CURRENT_DATE,
			payment_method TEXT NOT NULL DEFAULT 'cash',
			receipt_number TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id TEXT NOT NULL REFERENCES students(id),
			date DATE NOT NULL,
			status TEXT NOT NULL,
			time_in TEXT,
			time_out TEXT,
			notes TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS discounts (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id TEXT NOT NULL REFERENCES students(id),
			amount NUMERIC(12,2),
			percentage NUMERIC(5,2),
			reason TEXT NOT NULL,
			academic_year TEXT,
			approved_by TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CHECK (
				(amount IS NOT NULL AND percentage IS NULL) OR
				(amount IS NULL AND percentage IS NOT NULL)
			)
		)`,
		`CREATE TABLE IF NOT EXISTS academic_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id TEXT NOT NULL REFERENCES students(id),
			subject TEXT NOT NULL,
			term TEXT,
			marks NUMERIC(5,2),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS notes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id TEXT NOT NULL REFERENCES students(id),
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS parent_student_relations (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			parent_name TEXT NOT NULL,
			relation TEXT,
			student_id TEXT NOT NULL REFERENCES students(id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
