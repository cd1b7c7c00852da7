package models

import (
	"time"

	"github.com/google/uuid"
)

// Class is a teaching group within a department (batch, semester, section).
type Class struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string     `json:"name" gorm:"not null"`
	DepartmentID   *uuid.UUID `json:"department_id" gorm:"type:uuid"`
	BatchYear      int        `json:"batch_year" gorm:"not null"`
	Semester       int        `json:"semester" gorm:"not null"`
	Section        string     `json:"section"`
	ClassTeacherID *uuid.UUID `json:"class_teacher_id" gorm:"type:uuid"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TableName returns the database table name for the Class model.
func (Class) TableName() string {
	return "classes"
}

// Subject is a taught course unit.
type Subject struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `json:"name" gorm:"not null"`
	Code         string     `json:"code" gorm:"uniqueIndex;not null"`
	DepartmentID *uuid.UUID `json:"department_id" gorm:"type:uuid"`
	Semester     int        `json:"semester" gorm:"not null"`
	Credits      int        `json:"credits" gorm:"default:3"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TableName returns the database table name for the Subject model.
func (Subject) TableName() string {
	return "subjects"
}

// FacultySubject assigns a subject (and optionally a class) to a faculty member.
type FacultySubject struct {
	FacultyID uuid.UUID  `json:"faculty_id" gorm:"type:uuid;primaryKey"`
	SubjectID uuid.UUID  `json:"subject_id" gorm:"type:uuid;primaryKey"`
	ClassID   *uuid.UUID `json:"class_id" gorm:"type:uuid"`

	Faculty Faculty `json:"-" gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE"`
	Subject Subject `json:"-" gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the FacultySubject model.
func (FacultySubject) TableName() string {
	return "faculty_subjects"
}
