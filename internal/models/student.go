package models

import (
	"time"

	"github.com/google/uuid"
)

// Student is a student profile attached to a users row.
type Student struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID        uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`
	RollNumber    string     `json:"roll_number" gorm:"uniqueIndex;not null"`
	Name          string     `json:"name" gorm:"not null"`
	DepartmentID  *uuid.UUID `json:"department_id" gorm:"type:uuid"`
	BatchYear     int        `json:"batch_year" gorm:"not null"`
	Semester      int        `json:"semester" gorm:"default:1"`
	ClassID       *uuid.UUID `json:"class_id" gorm:"type:uuid"`
	BiometricID   *string    `json:"biometric_id" gorm:"uniqueIndex"`
	Phone         string     `json:"phone"`
	ParentPhone   string     `json:"parent_phone"`
	Address       string     `json:"address"`
	DateOfBirth   *time.Time `json:"date_of_birth" gorm:"type:date"`
	AdmissionDate *time.Time `json:"admission_date" gorm:"type:date"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the Student model.
func (Student) TableName() string {
	return "students"
}
