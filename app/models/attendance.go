package models

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceLeave   AttendanceStatus = "leave"
)

// ValidAttendanceStatus reports whether s is one of the accepted statuses
func ValidAttendanceStatus(s AttendanceStatus) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceLeave:
		return true
	}
	return false
}

// Attendance is one student's record for one date. The (student_id, date)
// pair is unique; writes go through an upsert.
type Attendance struct {
	ID        string           `json:"id"`
	StudentID string           `json:"student_id"`
	Date      time.Time        `json:"date"`
	Status    AttendanceStatus `json:"status"`
	TimeIn    *string          `json:"time_in,omitempty"`
	TimeOut   *string          `json:"time_out,omitempty"`
	Notes     *string          `json:"notes,omitempty"`

	StudentName string `json:"student_name,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	SectionName string `json:"section_name,omitempty"`
}
