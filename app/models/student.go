package models

import "time"

// Student represents an enrolled student
type Student struct {
	ID                     string     `json:"id"`
	FirstName              string     `json:"first_name"`
	LastName               string     `json:"last_name"`
	Gender                 *string    `json:"gender,omitempty"`
	BirthDate              *time.Time `json:"birth_date,omitempty"`
	Nationality            *string    `json:"nationality,omitempty"`
	Religion               *string    `json:"religion,omitempty"`
	Address                *string    `json:"address,omitempty"`
	EmergencyContact       *string    `json:"emergency_contact,omitempty"`
	MedicalConditions      *string    `json:"medical_conditions,omitempty"`
	BloodType              *string    `json:"blood_type,omitempty"`
	ParentGuardianName     *string    `json:"parent_guardian_name,omitempty"`
	ParentGuardianRelation *string    `json:"parent_guardian_relation,omitempty"`
	ParentPhone            *string    `json:"parent_phone,omitempty"`
	ParentEmail            *string    `json:"parent_email,omitempty"`
	ParentOccupation       *string    `json:"parent_occupation,omitempty"`
	ParentWorkAddress      *string    `json:"parent_work_address,omitempty"`
	AdmissionDate          time.Time  `json:"admission_date"`
	SectionID              SectionID  `json:"section_id"`
	AcademicYearID         *string    `json:"academic_year_id,omitempty"`
	Status                 string     `json:"status"`
	CreatedAt              time.Time  `json:"created_at"`

	// Populated by joins
	SectionName string `json:"section_name,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
}

// FullName joins first and last name the way every listing displays it
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
