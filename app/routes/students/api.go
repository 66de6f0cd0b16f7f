package students

import (
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/database"
	"github.com/abdulmumenalnahari-dot/Private-school-management-system/app/models"
)

// StudentResponse is the roster projection the students page consumes
type StudentResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	IDNumber  string  `json:"idNumber"`
	Grade     string  `json:"grade"`
	Section   string  `json:"section"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	DOB       *string `json:"dob"`
	CreatedAt string  `json:"createdAt"`
}

// CreateStudentRequest carries the admission form fields
type CreateStudentRequest struct {
	FirstName              string `json:"first_name"`
	LastName               string `json:"last_name"`
	Gender                 string `json:"gender"`
	BirthDate              string `json:"birth_date"`
	Nationality            string `json:"nationality"`
	Religion               string `json:"religion"`
	Address                string `json:"address"`
	EmergencyContact       string `json:"emergency_contact"`
	MedicalConditions      string `json:"medical_conditions"`
	BloodType              string `json:"blood_type"`
	ParentGuardianName     string `json:"parent_guardian_name"`
	ParentGuardianRelation string `json:"parent_guardian_relation"`
	ParentPhone            string `json:"parent_phone"`
	ParentEmail            string `json:"parent_email"`
	ParentOccupation       string `json:"parent_occupation"`
	ParentWorkAddress      string `json:"parent_work_address"`
	AdmissionDate          string `json:"admission_date"`
	SectionID              string `json:"section_id"`
	AcademicYearID         string `json:"academic_year_id"`
}

// GetStudentsAPI returns the full student roster
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetAllStudents(db)
	if err != nil {
		log.Printf("Failed to fetch students: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch students",
			"details": "Unexpected database error",
		})
	}

	response := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		entry := StudentResponse{
			ID:        s.ID,
			Name:      s.FullName(),
			IDNumber:  s.ID,
			Grade:     s.ClassName,
			Section:   s.SectionName,
			Phone:     s.ParentPhone,
			Email:     s.ParentEmail,
			Address:   s.Address,
			CreatedAt: s.AdmissionDate.Format("2006-01-02"),
		}
		if s.BirthDate != nil {
			dob := s.BirthDate.Format("2006-01-02")
			entry.DOB = &dob
		}
		response = append(response, entry)
	}

	return c.JSON(response)
}

// GetStudentsForFeesAPI returns active students for the fee entry dropdown
func GetStudentsForFeesAPI(c *fiber.Ctx, db *sql.DB) error {
	return studentListingResponse(c, db, database.GetStudentsForForms)
}

// GetStudentsForAttendanceAPI returns active students with grade and section
// for the attendance roster
func GetStudentsForAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	return studentListingResponse(c, db, database.GetStudentsForAttendance)
}

// GetStudentsForReportAPI returns active students for the report dropdown
func GetStudentsForReportAPI(c *fiber.Ctx, db *sql.DB) error {
	return studentListingResponse(c, db, database.GetStudentsForForms)
}

func studentListingResponse(c *fiber.Ctx, db *sql.DB, load func(*sql.DB) ([]*database.StudentListing, error)) error {
	listings, err := load(db)
	if err != nil {
		log.Printf("Failed to fetch student listings: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch students",
			"details": "Unexpected database error",
		})
	}
	return c.JSON(listings)
}

// CreateStudentAPI admits a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
	}

	// Required fields first, reported together
	var missing []string
	if req.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if req.LastName == "" {
		missing = append(missing, "last_name")
	}
	if req.SectionID == "" {
		missing = append(missing, "section_id")
	}
	if len(missing) > 0 {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Required fields are missing",
			"fields": missing,
		})
	}

	birthDate, ok := parseOptionalDate(req.BirthDate)
	if !ok {
		return c.Status(400).JSON(fiber.Map{
			"error": "Invalid date format, expected YYYY-MM-DD",
			"field": "birth_date",
			"value": req.BirthDate,
		})
	}

	admissionDate := time.Now()
	if req.AdmissionDate != "" {
		parsed, err := time.Parse("2006-01-02", req.AdmissionDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{
				"error": "Invalid date format, expected YYYY-MM-DD",
				"field": "admission_date",
				"value": req.AdmissionDate,
			})
		}
		admissionDate = parsed
	}

	sectionID := models.SectionID(req.SectionID)

	// Existence pre-checks give friendly errors before the insert
	duplicate, err := database.DuplicateStudentExists(db, req.FirstName, req.LastName, sectionID)
	if err != nil {
		return unexpectedError(c, "Failed to add student", err)
	}
	if duplicate {
		return c.Status(400).JSON(fiber.Map{
			"error":   "Student already exists",
			"details": "A student with the same name and section is already registered",
		})
	}

	sectionExists, err := database.SectionExists(db, sectionID)
	if err != nil {
		return unexpectedError(c, "Failed to add student", err)
	}
	if !sectionExists {
		return c.Status(400).JSON(fiber.Map{
			"error": "Selected section does not exist",
			"field": "section_id",
			"value": req.SectionID,
		})
	}

	if req.AcademicYearID != "" {
		yearExists, err := database.AcademicYearExists(db, req.AcademicYearID)
		if err != nil {
			return unexpectedError(c, "Failed to add student", err)
		}
		if !yearExists {
			return c.Status(400).JSON(fiber.Map{
				"error": "Selected academic year does not exist",
				"field": "academic_year_id",
				"value": req.AcademicYearID,
			})
		}
	}

	student := &models.Student{
		ID:                     "STD-" + uuid.New().String(),
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Gender:                 optional(req.Gender),
		BirthDate:              birthDate,
		Nationality:            optional(req.Nationality),
		Religion:               optional(req.Religion),
		Address:                optional(req.Address),
		EmergencyContact:       optional(req.EmergencyContact),
		MedicalConditions:      optional(req.MedicalConditions),
		BloodType:              optional(req.BloodType),
		ParentGuardianName:     optional(req.ParentGuardianName),
		ParentGuardianRelation: optional(req.ParentGuardianRelation),
		ParentPhone:            optional(req.ParentPhone),
		ParentEmail:            optional(req.ParentEmail),
		ParentOccupation:       optional(req.ParentOccupation),
		ParentWorkAddress:      optional(req.ParentWorkAddress),
		AdmissionDate:          admissionDate,
		SectionID:              sectionID,
		AcademicYearID:         optional(req.AcademicYearID),
	}

	if err := database.CreateStudent(db, student); err != nil {
		// The pre-checks race against concurrent writes; a foreign key
		// rejection here still becomes a friendly 400.
		if isForeignKeyViolation(err) {
			return c.Status(400).JSON(fiber.Map{
				"error":   "Selected section does not exist",
				"details": "Choose an existing section from the list",
			})
		}
		return unexpectedError(c, "Failed to add student", err)
	}

	return c.Status(201).JSON(fiber.Map{
		"id":      student.ID,
		"message": "Student added successfully",
		"success": true,
	})
}

// DeleteStudentAPI removes a student and all dependent records
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")

	err := database.DeleteStudent(db, studentID)
	if err == sql.ErrNoRows {
		return c.Status(404).JSON(fiber.Map{
			"error":     "Student not found",
			"studentId": studentID,
		})
	}
	if err != nil {
		return unexpectedError(c, "Failed to delete student", err)
	}

	return c.JSON(fiber.Map{
		"message": "Student deleted successfully",
		"success": true,
	})
}

func parseOptionalDate(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func isForeignKeyViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23503"
}

func unexpectedError(c *fiber.Ctx, message string, err error) error {
	log.Printf("%s: %v", message, err)
	return c.Status(500).JSON(fiber.Map{
		"error":   message,
		"details": "Unexpected database error",
	})
}
