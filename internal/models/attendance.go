package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus is the outcome recorded for one student in one time slot.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
	StatusExcused AttendanceStatus = "excused"
)

// Valid reports whether s is a recognized attendance status.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return true
	}
	return false
}

// Attendance is one per-subject, per-slot mark. At most one row exists per
// (student, subject, date, time_slot); re-marking updates the row in place.
type Attendance struct {
	ID                uuid.UUID        `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID         uuid.UUID        `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_slot"`
	SubjectID         uuid.UUID        `json:"subject_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_slot"`
	FacultyID         uuid.UUID        `json:"faculty_id" gorm:"type:uuid;not null"`
	ClassID           *uuid.UUID       `json:"class_id" gorm:"type:uuid"`
	Date              time.Time        `json:"date" gorm:"type:date;not null;uniqueIndex:idx_attendance_slot"`
	TimeSlot          string           `json:"time_slot" gorm:"uniqueIndex:idx_attendance_slot"`
	Status            AttendanceStatus `json:"status" gorm:"not null"`
	MarkedBy          uuid.UUID        `json:"marked_by" gorm:"type:uuid"`
	MarkedAt          time.Time        `json:"marked_at"`
	BiometricVerified bool             `json:"biometric_verified" gorm:"default:false"`
	Notes             string           `json:"notes"`
}

// TableName returns the database table name for the Attendance model.
func (Attendance) TableName() string {
	return "attendance"
}

// AttendanceRecord is the legacy day-level row with seven period flags.
// One row exists per (student, attendance_date); conflicting marks overwrite
// the period flags rather than inserting a duplicate.
type AttendanceRecord struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	StudentID      uuid.UUID `json:"student_id" gorm:"type:uuid;not null;uniqueIndex:idx_attendance_record_day"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid"`
	AttendanceDate time.Time `json:"attendance_date" gorm:"type:date;not null;uniqueIndex:idx_attendance_record_day"`
	Batch          string    `json:"batch"`
	Period1        bool      `json:"period1"`
	Period2        bool      `json:"period2"`
	Period3        bool      `json:"period3"`
	Period4        bool      `json:"period4"`
	Period5        bool      `json:"period5"`
	Period6        bool      `json:"period6"`
	Period7        bool      `json:"period7"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName returns the database table name for the AttendanceRecord model.
func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// AttendanceRecordRow is an AttendanceRecord joined with the student identity,
// as returned by the legacy listing endpoint.
type AttendanceRecordRow struct {
	AttendanceRecord
	Name       string `json:"name"`
	RollNumber string `json:"roll_no"`
}

// AttendanceSummary aggregates marks into a percentage, either per student
// (department analytics) or per subject (a student's own summary).
type AttendanceSummary struct {
	StudentID   uuid.UUID `json:"student_id,omitempty"`
	StudentName string    `json:"student_name,omitempty"`
	SubjectID   uuid.UUID `json:"subject_id,omitempty"`
	SubjectName string    `json:"subject_name,omitempty"`
	Total       int64     `json:"total"`
	Present     int64     `json:"present"`
	Percentage  float64   `json:"percentage"`
}
