package models

// ClassID and SectionID are distinct types on purpose: fee scoping joins
// classes while students reference sections, and the two must never be
// interchangeable at compile time.
type ClassID string

type SectionID string

// Class represents a grade level (e.g. "Grade 1")
type Class struct {
	ID          ClassID `json:"id"`
	Name        string  `json:"name"`
	Level       *string `json:"level,omitempty"`
	OrderNumber int     `json:"order_number"`
}

// Section is one stream within a class (e.g. "Grade 1 - A")
type Section struct {
	ID        SectionID `json:"id"`
	Name      string    `json:"name"`
	ClassID   ClassID   `json:"class_id"`
	ClassName string    `json:"class_name,omitempty"`
}

// SectionGroup groups a class's sections for form dropdowns
type SectionGroup struct {
	ClassID   ClassID        `json:"class_id"`
	ClassName string         `json:"class_name"`
	Sections  []SectionEntry `json:"sections"`
}

type SectionEntry struct {
	ID   SectionID `json:"id"`
	Name string    `json:"name"`
}
