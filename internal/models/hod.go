package models

import (
	"time"

	"github.com/google/uuid"
)

// HOD is the head-of-department profile attached to a users row.
type HOD struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null"`
	EmployeeID   string     `json:"employee_id" gorm:"uniqueIndex;not null"`
	Name         string     `json:"name" gorm:"not null"`
	DepartmentID *uuid.UUID `json:"department_id" gorm:"type:uuid"`
	BiometricID  *string    `json:"biometric_id" gorm:"uniqueIndex"`
	Phone        string     `json:"phone"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time  `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the HOD model.
func (HOD) TableName() string {
	return "hod"
}
